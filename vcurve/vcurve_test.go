package vcurve_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/whittaker/smooth"
	"github.com/katalvlaran/whittaker/vcurve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ones returns a weight vector of n ones.
func ones(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// seasonal builds a deterministic noisy seasonal series: a sine plus a
// fixed perturbation pattern, reproducible without a RNG.
func seasonal(n int, amplitude, noise float64) []float64 {
	y := make([]float64, n)
	for i := range y {
		t := float64(i)
		y[i] = amplitude*math.Sin(2*math.Pi*t/float64(n)*3) + noise*math.Sin(17.3*t+0.7)
	}
	return y
}

// cleanSeasonal is the noise-free counterpart of seasonal.
func cleanSeasonal(n int, amplitude float64) []float64 {
	return seasonal(n, amplitude, 0)
}

// rmse is the root-mean-square difference between two equal-length series.
func rmse(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return math.Sqrt(s / float64(len(a)))
}

// TestOptimize_GridValidation verifies the candidate-grid preconditions.
func TestOptimize_GridValidation(t *testing.T) {
	y := seasonal(20, 5, 1)
	w := ones(20)

	_, err := vcurve.Optimize(y, w, []float64{-1, 0})
	assert.ErrorIs(t, err, vcurve.ErrGridTooShort, "2 candidates must be rejected")

	_, err = vcurve.Optimize(y, w, []float64{-1, 1, 0})
	assert.ErrorIs(t, err, vcurve.ErrGridNotAscending, "unordered grid must be rejected")

	_, err = vcurve.Optimize(y, w, []float64{-1, -1, 0})
	assert.ErrorIs(t, err, vcurve.ErrGridNotAscending, "duplicate candidates must be rejected")
}

// TestOptimize_PropagatesInputErrors verifies series preconditions surface
// as the smooth package's sentinels.
func TestOptimize_PropagatesInputErrors(t *testing.T) {
	llas := []float64{-1, 0, 1}

	_, err := vcurve.Optimize(seasonal(10, 1, 0.1), ones(9), llas)
	assert.ErrorIs(t, err, smooth.ErrLengthMismatch, "length mismatch must be rejected")

	_, err = vcurve.Optimize([]float64{1, 2}, ones(2), llas)
	assert.ErrorIs(t, err, smooth.ErrTooShort, "n < 3 must be rejected")

	_, err = vcurve.Optimize(seasonal(10, 1, 0.1), make([]float64, 10), llas)
	assert.ErrorIs(t, err, smooth.ErrAllWeightsZero, "all-zero weights must be rejected")
}

// TestOptimize_Deterministic verifies repeated calls on identical inputs
// produce bit-identical results.
func TestOptimize_Deterministic(t *testing.T) {
	y := seasonal(60, 6, 1.2)
	w := ones(60)
	llas := []float64{-2, -1, 0, 1, 2}

	first, err := vcurve.Optimize(y, w, llas)
	require.NoError(t, err)
	second, err := vcurve.Optimize(y, w, llas)
	require.NoError(t, err)

	assert.Equal(t, first, second, "optimization must be deterministic")
}

// TestOptimize_InteriorWinner verifies the winner is never a grid endpoint
// and that the reported Lambda and LogLambda agree.
func TestOptimize_InteriorWinner(t *testing.T) {
	y := seasonal(80, 6, 1.5)
	llas := []float64{-2, -1, 0, 1, 2, 3}

	res, err := vcurve.Optimize(y, ones(80), llas)
	require.NoError(t, err)

	assert.Greater(t, res.LogLambda, llas[0], "winner must be interior (lower bound)")
	assert.Less(t, res.LogLambda, llas[len(llas)-1], "winner must be interior (upper bound)")
	assert.InDelta(t, math.Pow(10, res.LogLambda), res.Lambda, 1e-12, "Lambda must equal 10^LogLambda")
	assert.Len(t, res.Z, 80, "fit must have the series length")
}

// TestOptimize_NearConstantPrefersHighLambda is the smoothness-bias
// scenario: on a near-constant noisy series, lowering lambda buys almost
// no fidelity, so the V-curve corner sits at a high-lambda candidate.
func TestOptimize_NearConstantPrefersHighLambda(t *testing.T) {
	n := 50
	y := make([]float64, n)
	for i := range y {
		y[i] = 10 + 0.3*math.Sin(17.3*float64(i)+0.7)
	}
	llas := []float64{-2, -1, 0, 1, 2}

	res, err := vcurve.Optimize(y, ones(n), llas)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.LogLambda, 0.0, "near-constant series must select a high-lambda candidate")
}

// TestOptimize_DenoisesTowardSignal verifies the selected fit is closer to
// the underlying clean signal than the noisy observations are.
func TestOptimize_DenoisesTowardSignal(t *testing.T) {
	n := 100
	clean := cleanSeasonal(n, 5)
	y := seasonal(n, 5, 1)
	llas := []float64{-1, 0, 1, 2, 3}

	res, err := vcurve.Optimize(y, ones(n), llas)
	require.NoError(t, err)

	assert.Less(t, rmse(res.Z, clean), rmse(y, clean),
		"the optimized fit must beat the raw observations against the clean signal")
}

// TestOptimize_MaskedSlotsAreBridged verifies zero-weight slots come back
// interpolated, not copied from the nodata placeholder.
func TestOptimize_MaskedSlotsAreBridged(t *testing.T) {
	n := 60
	y := seasonal(n, 5, 0.8)
	w := ones(n)
	for _, i := range []int{7, 8, 23, 41} {
		y[i] = -3000 // nodata placeholder
		w[i] = 0
	}
	llas := []float64{-1, 0, 1, 2}

	res, err := vcurve.Optimize(y, w, llas)
	require.NoError(t, err)
	for _, i := range []int{7, 8, 23, 41} {
		assert.Greater(t, res.Z[i], -100.0, "masked slot %d must be bridged, not copied", i)
		assert.Less(t, math.Abs(res.Z[i]), 10.0, "masked slot %d must stay near the signal range", i)
	}
}
