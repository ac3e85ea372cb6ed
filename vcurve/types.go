// Package vcurve defines options and results for V-curve optimization.
package vcurve

// Result is the outcome of a V-curve optimization.
type Result struct {
	// Z is the fitted series at the chosen smoothing parameter.
	Z []float64
	// Lambda is the chosen smoothing parameter.
	Lambda float64
	// LogLambda is log10(Lambda), the grid coordinate of the winner.
	// Pipelines that persist per-pixel parameter grids store this value.
	LogLambda float64
}

// Options tunes the asymmetric reweighting loop of OptimizeAsymmetric.
//
// Fields:
//   - MaxIterations — upper bound on optimize/reweight passes.
//   - Tolerance     — the loop stops early once the total absolute change
//     of the effective weights, Σ|w′ − w′_prev|, drops to this value.
//     Zero demands exact stabilization.
//
// Example:
//
//	opts := vcurve.DefaultOptions()
//	opts.MaxIterations = 6
//	res, err := vcurve.OptimizeAsymmetric(y, w, llas, 0.9, &opts)
type Options struct {
	MaxIterations int
	Tolerance     float64
}

// DefaultOptions returns the operational defaults: at most 10 passes,
// exact weight stabilization.
func DefaultOptions() Options {
	return Options{MaxIterations: 10, Tolerance: 0}
}
