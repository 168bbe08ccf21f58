package visualization

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/SakshiKapadnis-IU/h501-gutenberg/internal/errors"
)

// Theme controls the look shared by every chart in this package.
type Theme struct {
	Width      vg.Length
	Height     vg.Length
	Background color.Color
	Grid       color.Color
}

// chart element colors (a muted categorical palette starts at histFill)
var (
	histFill = color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff}
	histLine = color.RGBA{R: 0x2a, G: 0x43, B: 0x6e, A: 0xff}
	kdeLine  = color.RGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff}
)

// DarkGrid returns the default theme: a light gray plotting background with
// white grid lines on a 12x6 inch canvas.
func DarkGrid() Theme {
	return Theme{
		Width:      12 * vg.Inch,
		Height:     6 * vg.Inch,
		Background: color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff},
		Grid:       color.White,
	}
}

// currentTheme is the process-wide style applied by newPlot. The toolkit is
// single-threaded; no locking is needed.
var currentTheme = DarkGrid()

// SetTheme replaces the process-wide chart theme.
func SetTheme(t Theme) {
	currentTheme = t
}

// CurrentTheme returns the active chart theme.
func CurrentTheme() Theme {
	return currentTheme
}

// SetCanvasSize adjusts only the canvas dimensions of the active theme.
func SetCanvasSize(width, height vg.Length) {
	currentTheme.Width = width
	currentTheme.Height = height
}

// newPlot creates a plot with the active theme applied: background, grid,
// and font sizes. The grid is added first so data renders above it.
func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.BackgroundColor = currentTheme.Background

	grid := plotter.NewGrid()
	grid.Vertical.Color = currentTheme.Grid
	grid.Horizontal.Color = currentTheme.Grid
	grid.Vertical.Width = vg.Points(0.75)
	grid.Horizontal.Width = vg.Points(0.75)
	p.Add(grid)

	return p
}

// Save renders the plot to path at the active theme's canvas size, creating
// the parent directory if needed. The image format follows the file
// extension (.png, .svg, .pdf, ...).
func Save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to create chart directory for %s", path), err)
	}
	if err := p.Save(currentTheme.Width, currentTheme.Height, path); err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to save chart %s", path), err)
	}
	return nil
}
