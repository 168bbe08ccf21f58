package visualization

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// BoxPlotOptions configures a box plot.
type BoxPlotOptions struct {
	Title string // empty means "<y> by <x>" or "Box Plot of <y>"
}

// boxWidth is the rendered width of each box.
const boxWidth = vg.Length(40)

// BoxPlot builds a box-and-whisker plot of the numeric column y. With x set
// to a categorical column, one box is drawn per distinct x value, sorted by
// label; with x empty a single box summarizes the whole column.
func BoxPlot(df dataframe.DataFrame, x, y string, opts BoxPlotOptions) (*plot.Plot, error) {
	vals, err := numericValues(df, y)
	if err != nil {
		return nil, err
	}

	if x == "" {
		title := opts.Title
		if title == "" {
			title = fmt.Sprintf("Box Plot of %s", y)
		}
		p := newPlot(title)
		p.Y.Label.Text = y

		b, err := plotter.NewBoxPlot(boxWidth, 0, plotter.Values(vals))
		if err != nil {
			return nil, apperrors.NewPlottingError(
				fmt.Sprintf("failed to build box plot for column %q", y), err)
		}
		p.Add(b)
		p.NominalX(y)
		return p, nil
	}

	if err := requireColumns(df, x); err != nil {
		return nil, err
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s by %s", y, x)
	}
	p := newPlot(title)
	p.X.Label.Text = x
	p.Y.Label.Text = y

	keys, groups := groupValues(df, x, y)
	if len(keys) == 0 {
		return nil, apperrors.EmptyDataset("box plot")
	}
	for i, key := range keys {
		b, err := plotter.NewBoxPlot(boxWidth, float64(i), plotter.Values(groups[key]))
		if err != nil {
			return nil, apperrors.NewPlottingError(
				fmt.Sprintf("failed to build box for group %q", key), err)
		}
		p.Add(b)
	}
	p.NominalX(keys...)

	return p, nil
}
