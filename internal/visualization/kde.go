package visualization

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/plotter"
)

// kdeSteps is the number of grid points the density curve is evaluated on.
const kdeSteps = 200

// kdeCurve evaluates a Gaussian kernel density estimate of vals on an
// evenly spaced grid extended three bandwidths past the data range.
// Bandwidth follows Silverman's rule of thumb.
func kdeCurve(vals []float64, steps int) plotter.XYs {
	n := len(vals)
	if n == 0 || steps < 2 {
		return nil
	}

	bw := silvermanBandwidth(vals)
	lo := floats.Min(vals) - 3*bw
	hi := floats.Max(vals) + 3*bw

	pts := make(plotter.XYs, steps)
	step := (hi - lo) / float64(steps-1)
	for i := range pts {
		x := lo + float64(i)*step
		density := 0.0
		for _, v := range vals {
			density += distuv.UnitNormal.Prob((x - v) / bw)
		}
		pts[i].X = x
		pts[i].Y = density / (float64(n) * bw)
	}
	return pts
}

// silvermanBandwidth returns 1.06 * sigma * n^(-1/5), with a unit fallback
// for degenerate samples.
func silvermanBandwidth(vals []float64) float64 {
	sigma := stat.StdDev(vals, nil)
	bw := 1.06 * sigma * math.Pow(float64(len(vals)), -0.2)
	if bw <= 0 || math.IsNaN(bw) {
		return 1
	}
	return bw
}
