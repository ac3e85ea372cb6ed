package vcurve

import (
	"math"

	"github.com/katalvlaran/whittaker/smooth"
)

// OptimizeAsymmetric — V-curve optimization of an asymmetric envelope fit
//
// Description:
//
//	Wraps Optimize in a residual-sign reweighting loop. Each pass runs a
//	full V-curve selection with the current effective weights, then
//	updates them from the residual signs, normalized so the larger of the
//	two reweight factors is exactly 1:
//
//		w′ᵢ = wᵢ·p/max(p, 1−p)        if yᵢ − zᵢ ≥ 0  (observation above the fit)
//		w′ᵢ = wᵢ·(1−p)/max(p, 1−p)    otherwise
//
//	The normalization matters: scaling every weight by a uniform factor c
//	is the same as scaling λ by 1/c, so an unnormalized update would drag
//	the λ axis under the candidate grid and snap the curvature winner to
//	a neighboring candidate even when nothing about the fit changed.
//	Pinning the larger factor to 1 removes the uniform component, and the
//	degenerate case p = 0.5 leaves the weights untouched — the loop then
//	stabilizes after one pass and returns exactly the symmetric Optimize
//	result.
//
//	With p > 0.5 observations above the fit pull harder, so the curve
//	climbs toward an upper envelope; p < 0.5 produces a lower envelope.
//	The loop stops once the weights stabilize within opts.Tolerance, or
//	after opts.MaxIterations passes, whichever comes first, and the last
//	pass's result is returned.
//
// Errors:
//   - smooth.ErrAsymmetryOutOfRange — p outside (0, 1).
//   - ErrInvalidOptions             — MaxIterations < 1 or Tolerance < 0.
//   - anything Optimize can return.
//
// opts may be nil, which means DefaultOptions().
func OptimizeAsymmetric(y, w, llas []float64, p float64, opts *Options) (Result, error) {
	if !(p > 0 && p < 1) {
		return Result{}, smooth.ErrAsymmetryOutOfRange
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxIterations < 1 || o.Tolerance < 0 || math.IsNaN(o.Tolerance) {
		return Result{}, ErrInvalidOptions
	}
	if len(y) != len(w) {
		return Result{}, smooth.ErrLengthMismatch
	}

	scale := math.Max(p, 1-p)
	wcur := append([]float64(nil), w...)
	var res Result
	for it := 0; it < o.MaxIterations; it++ {
		var err error
		res, err = Optimize(y, wcur, llas)
		if err != nil {
			return Result{}, err
		}

		var delta float64
		for i := range wcur {
			next := w[i] * (1 - p) / scale
			if y[i]-res.Z[i] >= 0 {
				next = w[i] * p / scale
			}
			delta += math.Abs(next - wcur[i])
			wcur[i] = next
		}
		if delta <= o.Tolerance {
			break
		}
	}
	return res, nil
}
