package vcurve

import (
	"math"

	"github.com/katalvlaran/whittaker/lagcorr"
)

// AutoGrid picks the operational default log10(λ) candidate grid for a
// series, driven by its lag-1 autocorrelation against the nodata sentinel:
//
//   - r > 0.5 — strong temporal signal, search low λ:  [-2.0, 1.0] step 0.2
//   - r ≤ 0.5 — noise-dominated, search high λ:        [ 0.0, 3.0] step 0.2
//   - degenerate series (too few valid samples):       [-1.0, 1.0] step 0.2
//
// The returned grid is strictly ascending and always valid input for
// Optimize. Candidates are rounded to two decimals, matching the grids
// operational pipelines persist alongside their data.
func AutoGrid(y []float64, nodata float64) []float64 {
	if len(y) < 2 {
		return gridRange(-1, 1, 0.2)
	}
	r, err := lagcorr.Lag1(y[:len(y)-1], y[1:], nodata)
	switch {
	case err != nil:
		return gridRange(-1, 1, 0.2)
	case r > 0.5:
		return gridRange(-2, 1, 0.2)
	default:
		return gridRange(0, 3, 0.2)
	}
}

// gridRange returns lo..hi inclusive with the given step, each candidate
// rounded to two decimals so accumulated float error cannot creep into
// persisted parameter values.
func gridRange(lo, hi, step float64) []float64 {
	count := int(math.Round((hi-lo)/step)) + 1
	g := make([]float64, count)
	for i := range g {
		g[i] = math.Round((lo+float64(i)*step)*100) / 100
	}
	return g
}
