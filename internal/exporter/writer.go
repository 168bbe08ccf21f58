// Package exporter writes analysis results (dataframes and summaries) to
// CSV and JSON files under a configured output directory. The library's
// data and chart packages stay persistence-free; this package is driven by
// the analysis command.
package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-gota/gota/dataframe"

	"github.com/SakshiKapadnis-IU/h501-gutenberg/internal/dataprocessing"
	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// utf8BOM helps Excel recognize UTF-8 encoded CSV files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer provides CSV and JSON export under a fixed output directory.
type Writer struct {
	outDir string
	logger *slog.Logger
	// BOM prefixes CSV files with a UTF-8 byte order mark for Excel
	// compatibility.
	BOM bool
}

// NewWriter creates a writer rooted at outDir. A nil logger falls back to
// the default slog logger.
func NewWriter(outDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{outDir: outDir, logger: logger}
}

// WriteDataFrameCSV writes the dataframe to <outDir>/<name> as CSV with a
// header row and returns the full path.
func (w *Writer) WriteDataFrameCSV(name string, df dataframe.DataFrame) (string, error) {
	path, file, err := w.create(name)
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := df.WriteCSV(file); err != nil {
		return "", apperrors.NewStorageError(
			fmt.Sprintf("failed to write dataframe to %s", path), err)
	}

	w.logger.Info("wrote dataframe CSV",
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))
	return path, nil
}

// WriteSummaryCSV writes one row per column of the summary: its type and,
// for numeric columns, the describe statistics. Returns the full path.
func (w *Writer) WriteSummaryCSV(name string, s dataprocessing.Summary) (string, error) {
	path, file, err := w.create(name)
	if err != nil {
		return "", err
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	header := []string{"Column", "Type", "Count", "Mean", "Std", "Min", "Q25", "Median", "Q75", "Max"}
	if err := cw.Write(header); err != nil {
		return "", apperrors.NewStorageError("failed to write summary header", err)
	}

	for _, column := range sortedColumns(s) {
		record := []string{column, s.Types[column], "", "", "", "", "", "", "", ""}
		if cs, ok := s.NumericStats[column]; ok {
			record = []string{
				column,
				s.Types[column],
				formatInt(int64(cs.Count)),
				formatFloat(cs.Mean),
				formatFloat(cs.Std),
				formatFloat(cs.Min),
				formatFloat(cs.Q25),
				formatFloat(cs.Median),
				formatFloat(cs.Q75),
				formatFloat(cs.Max),
			}
		}
		if err := cw.Write(record); err != nil {
			return "", apperrors.NewStorageError(
				fmt.Sprintf("failed to write summary row for column %s", column), err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", apperrors.NewStorageError("failed to flush summary CSV", err)
	}

	w.logger.Info("wrote summary CSV", slog.String("path", path))
	return path, nil
}

// WriteSummaryJSON writes the summary as indented JSON and returns the
// full path.
func (w *Writer) WriteSummaryJSON(name string, s dataprocessing.Summary) (string, error) {
	path := filepath.Join(w.outDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", apperrors.NewStorageError("failed to create output directory", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", apperrors.NewStorageError("failed to marshal summary", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", apperrors.NewStorageError(
			fmt.Sprintf("failed to write summary JSON to %s", path), err)
	}

	w.logger.Info("wrote summary JSON", slog.String("path", path))
	return path, nil
}

// create opens a fresh output file, writing the BOM prefix if configured.
func (w *Writer) create(name string) (string, *os.File, error) {
	path := filepath.Join(w.outDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", nil, apperrors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return "", nil, apperrors.NewStorageError(
			fmt.Sprintf("failed to create %s", path), err)
	}

	if w.BOM {
		if _, err := file.Write(utf8BOM); err != nil {
			file.Close()
			return "", nil, apperrors.NewStorageError("failed to write BOM", err)
		}
	}
	return path, file, nil
}

// sortedColumns returns the summary's column names in stable order.
func sortedColumns(s dataprocessing.Summary) []string {
	columns := make([]string, 0, len(s.Types))
	for column := range s.Types {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}
