package visualization

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// DistributionOptions configures a distribution plot.
type DistributionOptions struct {
	Title string // empty means "Distribution of <column>"
	Bins  int    // zero or negative means 30
	KDE   bool   // overlay a kernel density estimate
}

// DefaultDistributionOptions returns the standard settings: 30 bins with a
// KDE overlay.
func DefaultDistributionOptions() DistributionOptions {
	return DistributionOptions{Bins: 30, KDE: true}
}

// Distribution builds a histogram of a numeric column. With KDE enabled the
// histogram is normalized to a density and a smoothed kernel density curve
// is drawn on top.
func Distribution(df dataframe.DataFrame, column string, opts DistributionOptions) (*plot.Plot, error) {
	vals, err := numericValues(df, column)
	if err != nil {
		return nil, err
	}

	if opts.Bins <= 0 {
		opts.Bins = 30
	}
	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("Distribution of %s", column)
	}

	p := newPlot(title)
	p.X.Label.Text = column
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(vals), opts.Bins)
	if err != nil {
		return nil, apperrors.NewPlottingError(
			fmt.Sprintf("failed to build histogram for column %q", column), err)
	}
	hist.FillColor = histFill
	hist.LineStyle.Color = histLine
	if opts.KDE {
		hist.Normalize(1)
		p.Y.Label.Text = "Density"
	}
	p.Add(hist)

	if opts.KDE {
		curve, err := plotter.NewLine(kdeCurve(vals, kdeSteps))
		if err != nil {
			return nil, apperrors.NewPlottingError(
				fmt.Sprintf("failed to build density curve for column %q", column), err)
		}
		curve.LineStyle.Color = kdeLine
		curve.LineStyle.Width = vg.Points(2)
		p.Add(curve)
	}

	return p, nil
}
