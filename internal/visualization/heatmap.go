package visualization

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/SakshiKapadnis-IU/h501-gutenberg/internal/dataprocessing"
	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// HeatmapOptions configures a correlation heat map.
type HeatmapOptions struct {
	Title string // empty means "Correlation Heatmap"
}

// Heatmap builds a Pearson correlation matrix over the numeric columns of
// the dataframe and renders it with a diverging blue-red palette scaled to
// [-1, 1]. Rows containing missing numeric values are excluded from the
// correlation.
func Heatmap(df dataframe.DataFrame, opts HeatmapOptions) (*plot.Plot, error) {
	cols := dataprocessing.NumericColumns(df)
	if len(cols) < 2 {
		return nil, apperrors.NewValidationError(
			"correlation heatmap requires at least two numeric columns", nil)
	}

	rows := completeRows(df, cols)
	if len(rows) < 2 {
		return nil, apperrors.EmptyDataset("correlation heatmap")
	}

	data := mat.NewDense(len(rows), len(cols), nil)
	for i, row := range rows {
		data.SetRow(i, row)
	}
	corr := mat.NewSymDense(len(cols), nil)
	stat.CorrelationMatrix(corr, data, nil)

	title := opts.Title
	if title == "" {
		title = "Correlation Heatmap"
	}
	p := newPlot(title)

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{corr}, cm.Palette(255))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)

	p.NominalX(cols...)
	p.NominalY(cols...)

	return p, nil
}

// completeRows collects the rows of the named numeric columns that contain
// no missing values.
func completeRows(df dataframe.DataFrame, cols []string) [][]float64 {
	colVals := make([][]float64, len(cols))
	for i, c := range cols {
		colVals[i] = df.Col(c).Float()
	}

	var rows [][]float64
	for r := 0; r < df.Nrow(); r++ {
		row := make([]float64, len(cols))
		complete := true
		for i := range cols {
			v := colVals[i][r]
			if math.IsNaN(v) {
				complete = false
				break
			}
			row[i] = v
		}
		if complete {
			rows = append(rows, row)
		}
	}
	return rows
}

// corrGrid adapts a symmetric correlation matrix to the plotter grid
// interface, one cell per column pair.
type corrGrid struct {
	m *mat.SymDense
}

func (g corrGrid) Dims() (c, r int) {
	n, _ := g.m.Dims()
	return n, n
}

func (g corrGrid) Z(c, r int) float64 { return g.m.At(r, c) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
