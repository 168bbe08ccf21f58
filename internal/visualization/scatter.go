package visualization

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// ScatterOptions configures a scatter plot.
type ScatterOptions struct {
	Title string // empty means "<y> vs <x>"
	Hue   string // optional column whose categories color the points
}

// Scatter builds a scatter plot of two numeric columns. When Hue names a
// column, points are grouped by its values, colored per group, and a legend
// is added.
func Scatter(df dataframe.DataFrame, x, y string, opts ScatterOptions) (*plot.Plot, error) {
	if err := requireColumns(df, x, y); err != nil {
		return nil, err
	}
	if opts.Hue != "" {
		if err := requireColumns(df, opts.Hue); err != nil {
			return nil, err
		}
	}
	if df.Nrow() == 0 {
		return nil, apperrors.EmptyDataset("scatter plot")
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("%s vs %s", y, x)
	}

	p := newPlot(title)
	p.X.Label.Text = x
	p.Y.Label.Text = y

	xs := df.Col(x).Float()
	ys := df.Col(y).Float()

	if opts.Hue == "" {
		s, err := newScatter(pairs(xs, ys, nil, ""), 0)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		return p, nil
	}

	labels := df.Col(opts.Hue).Records()
	keys, _ := groupValues(df, opts.Hue, y)
	for i, key := range keys {
		s, err := newScatter(pairs(xs, ys, labels, key), i)
		if err != nil {
			return nil, err
		}
		p.Add(s)
		p.Legend.Add(key, s)
	}
	p.Legend.Top = true

	return p, nil
}

// pairs builds the XY points, skipping rows with non-finite coordinates.
// With labels set, only rows whose label equals key are included.
func pairs(xs, ys []float64, labels []string, key string) plotter.XYs {
	var pts plotter.XYs
	for i := range xs {
		if labels != nil && labels[i] != key {
			continue
		}
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}

// newScatter creates a styled scatter plotter using the i-th palette color.
func newScatter(pts plotter.XYs, i int) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, apperrors.NewPlottingError("failed to build scatter plot", err)
	}
	s.GlyphStyle.Color = plotutil.Color(i)
	s.GlyphStyle.Radius = vg.Points(4)
	return s, nil
}
