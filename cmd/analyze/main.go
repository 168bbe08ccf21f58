// Command analyze runs the toolkit's demo pipeline end to end: load a
// tabular file (or generate the synthetic sample dataset), clean it,
// summarize it, aggregate it, and render the standard set of charts.
//
// Usage:
//
//	analyze -input data/input.csv -group category -value value -agg mean
//	analyze -rows 500 -out results
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot/vg"

	"github.com/SakshiKapadnis-IU/h501-gutenberg/internal/config"
	"github.com/SakshiKapadnis-IU/h501-gutenberg/internal/dataprocessing"
	"github.com/SakshiKapadnis-IU/h501-gutenberg/internal/exporter"
	"github.com/SakshiKapadnis-IU/h501-gutenberg/internal/infrastructure"
	"github.com/SakshiKapadnis-IU/h501-gutenberg/internal/visualization"
)

func main() {
	input := flag.String("input", "", "tabular input file (.csv or .xlsx); empty generates the sample dataset")
	rows := flag.Int("rows", 0, "sample dataset size (defaults to the configured value)")
	out := flag.String("out", "", "output directory (defaults to the configured value)")
	groupCol := flag.String("group", "category", "column to group by")
	valueCol := flag.String("value", "value", "column to aggregate and plot")
	aggFn := flag.String("agg", "mean", "aggregate function: mean | sum | count | min | max")
	configFile := flag.String("config", "config.yaml", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if *rows > 0 {
		cfg.Sample.Rows = *rows
	}
	if *out != "" {
		cfg.Paths.OutputDir = *out
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if err := run(cfg, logger, *input, *groupCol, *valueCol, *aggFn); err != nil {
		logger.Error("Analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, input, groupCol, valueCol, aggFn string) error {
	visualization.SetCanvasSize(
		vg.Length(cfg.Charts.WidthInches)*vg.Inch,
		vg.Length(cfg.Charts.HeightInches)*vg.Inch)

	df, err := loadInput(cfg, logger, input)
	if err != nil {
		return err
	}

	clean := dataprocessing.Clean(df)
	if clean.Err != nil {
		return fmt.Errorf("cleaning failed: %w", clean.Err)
	}
	logger.Info("cleaned dataset",
		slog.Int("rows_before", df.Nrow()),
		slog.Int("rows_after", clean.Nrow()))

	summary := dataprocessing.Summarize(clean)
	logger.Info("summarized dataset",
		slog.Int("rows", summary.Rows),
		slog.Int("columns", summary.Columns),
		slog.Int("missing_values", summary.MissingValues))

	agg, err := dataprocessing.Aggregate(clean, groupCol, valueCol, aggFn)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}

	writer := exporter.NewWriter(cfg.Paths.OutputDir, logger)
	if _, err := writer.WriteSummaryCSV("summary.csv", summary); err != nil {
		return err
	}
	if _, err := writer.WriteSummaryJSON("summary.json", summary); err != nil {
		return err
	}
	if _, err := writer.WriteDataFrameCSV("aggregation.csv", agg); err != nil {
		return err
	}

	return renderCharts(cfg, logger, clean, groupCol, valueCol)
}

// loadInput reads the input file, or generates the synthetic sample dataset
// when no file is given.
func loadInput(cfg *config.Config, logger *slog.Logger, input string) (dataframe.DataFrame, error) {
	if input == "" {
		logger.Info("generating sample dataset",
			slog.Int("rows", cfg.Sample.Rows),
			slog.Uint64("seed", cfg.Sample.Seed))
		return dataprocessing.SampleData(cfg.Sample.Rows, cfg.Sample.Seed), nil
	}
	return dataprocessing.LoadFile(input)
}

// renderCharts saves the standard chart set for the dataset. Charts whose
// column requirements the dataset cannot satisfy are skipped with a warning
// rather than failing the run.
func renderCharts(cfg *config.Config, logger *slog.Logger, df dataframe.DataFrame, groupCol, valueCol string) error {
	charts := []struct {
		file  string
		build func() (err error)
	}{
		{"distribution.png", func() error {
			opts := visualization.DistributionOptions{Bins: cfg.Charts.Bins, KDE: cfg.Charts.KDE}
			p, err := visualization.Distribution(df, valueCol, opts)
			if err != nil {
				return err
			}
			return visualization.Save(p, filepath.Join(cfg.Paths.OutputDir, "distribution.png"))
		}},
		{"scatter.png", func() error {
			numeric := dataprocessing.NumericColumns(df)
			if len(numeric) < 2 {
				return fmt.Errorf("scatter plot needs two numeric columns")
			}
			p, err := visualization.Scatter(df, numeric[0], numeric[1],
				visualization.ScatterOptions{Hue: groupCol})
			if err != nil {
				return err
			}
			return visualization.Save(p, filepath.Join(cfg.Paths.OutputDir, "scatter.png"))
		}},
		{"boxplot.png", func() error {
			p, err := visualization.BoxPlot(df, groupCol, valueCol, visualization.BoxPlotOptions{})
			if err != nil {
				return err
			}
			return visualization.Save(p, filepath.Join(cfg.Paths.OutputDir, "boxplot.png"))
		}},
		{"heatmap.png", func() error {
			p, err := visualization.Heatmap(df, visualization.HeatmapOptions{})
			if err != nil {
				return err
			}
			return visualization.Save(p, filepath.Join(cfg.Paths.OutputDir, "heatmap.png"))
		}},
		{"counts.png", func() error {
			p, err := visualization.CountPlot(df, groupCol, visualization.CountPlotOptions{})
			if err != nil {
				return err
			}
			return visualization.Save(p, filepath.Join(cfg.Paths.OutputDir, "counts.png"))
		}},
	}

	rendered := 0
	for _, chart := range charts {
		if err := chart.build(); err != nil {
			logger.Warn("skipping chart",
				slog.String("chart", chart.file),
				slog.String("reason", err.Error()))
			continue
		}
		rendered++
		logger.Info("rendered chart", slog.String("chart", chart.file))
	}
	if rendered == 0 {
		return fmt.Errorf("no charts could be rendered")
	}
	return nil
}
