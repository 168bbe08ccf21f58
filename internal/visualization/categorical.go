package visualization

import (
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// CountPlotOptions configures a categorical count plot.
type CountPlotOptions struct {
	Title      string // empty means "Counts of <column>"
	Horizontal bool   // draw bars horizontally
}

// CountPlot builds a bar chart of how often each distinct value of a column
// occurs, with categories sorted by label.
func CountPlot(df dataframe.DataFrame, column string, opts CountPlotOptions) (*plot.Plot, error) {
	if err := requireColumns(df, column); err != nil {
		return nil, err
	}
	if df.Nrow() == 0 {
		return nil, apperrors.EmptyDataset("count plot")
	}

	counts := make(map[string]float64)
	for _, v := range df.Col(column).Records() {
		counts[v]++
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(plotter.Values, len(keys))
	for i, k := range keys {
		values[i] = counts[k]
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("Counts of %s", column)
	}
	p := newPlot(title)

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, apperrors.NewPlottingError(
			fmt.Sprintf("failed to build count plot for column %q", column), err)
	}
	bars.Color = plotutil.Color(0)
	bars.Horizontal = opts.Horizontal
	p.Add(bars)

	if opts.Horizontal {
		p.NominalY(keys...)
		p.X.Label.Text = "Count"
		p.Y.Label.Text = column
	} else {
		p.NominalX(keys...)
		p.X.Label.Text = column
		p.Y.Label.Text = "Count"
	}

	return p, nil
}
