package vcurve

import (
	"errors"
	"math"

	"github.com/katalvlaran/whittaker/smooth"
)

// Optimize — V-curve selection of the smoothing parameter
//
// Description:
//
//	Fits the Whittaker smoother once per candidate v in llas (λ = 10^v),
//	scores each fit by log10 fidelity F(v) and log10 roughness R(v), and
//	picks the interior candidate where the parametric curve (R(v), F(v))
//	bends hardest.
//
// Algorithm Outline:
//  1. For each v in llas: z = smooth(y, w, 10^v),
//     F(v) = log10(Σ wᵢ·(yᵢ−zᵢ)²), R(v) = log10(Σ (Δ²z)²).
//  2. At each interior grid point, approximate F′, F″, R′, R″ by central
//     finite differences with respect to v and form
//     κ = (F′·R″ − R′·F″) / (F′² + R′²)^(3/2).
//  3. The winner maximizes |κ|; ties resolve to the smallest λ (first hit
//     in the ascending scan). Endpoints never win: curvature needs both
//     neighbors.
//  4. Re-fit at the winning λ and return (z, λ).
//
// Complexity:
//
//	Time   = O(n·len(llas)) — one O(n) solve per candidate
//	Memory = O(n + len(llas))
//
// Errors:
//   - ErrGridTooShort      — fewer than 3 candidates.
//   - ErrGridNotAscending  — candidates not strictly increasing.
//   - ErrDegenerateCurve   — no interior point has finite curvature
//     (e.g. a zero-residual series drives F(v) to −∞).
//   - smooth.* validation errors for invalid y, w.
var (
	// ErrGridTooShort indicates fewer than 3 log10(λ) candidates.
	ErrGridTooShort = errors.New("vcurve: candidate grid must have at least 3 values")

	// ErrGridNotAscending indicates the candidate grid is not strictly ascending.
	ErrGridNotAscending = errors.New("vcurve: candidate grid must be strictly ascending")

	// ErrDegenerateCurve indicates curvature was undefined at every interior
	// candidate, so no corner exists to select.
	ErrDegenerateCurve = errors.New("vcurve: curvature undefined on the whole grid")

	// ErrInvalidOptions indicates MaxIterations < 1 or a negative Tolerance.
	ErrInvalidOptions = errors.New("vcurve: options must have MaxIterations >= 1 and Tolerance >= 0")
)

// Optimize selects λ from the log10 candidates llas by the V-curve method
// and returns the fit at the winner. The call is pure and deterministic:
// identical inputs yield identical results.
func Optimize(y, w, llas []float64) (Result, error) {
	if err := validateGrid(llas); err != nil {
		return Result{}, err
	}
	if len(y) != len(w) {
		return Result{}, smooth.ErrLengthMismatch
	}
	if len(y) < 3 {
		return Result{}, smooth.ErrTooShort
	}

	n := len(y)
	nl := len(llas)
	fits := make([]float64, nl)
	pens := make([]float64, nl)
	z := make([]float64, n)
	ws := smooth.NewWorkspace(n)

	for k, v := range llas {
		if err := smooth.SmoothInto(z, y, w, math.Pow(10, v), ws); err != nil {
			return Result{}, err
		}
		var fit, pen float64
		for i := 0; i < n; i++ {
			r := y[i] - z[i]
			fit += w[i] * r * r
		}
		for i := 0; i+2 < n; i++ {
			d := z[i] - 2*z[i+1] + z[i+2]
			pen += d * d
		}
		fits[k] = math.Log10(fit)
		pens[k] = math.Log10(pen)
	}

	best := -1
	bestAbs := math.Inf(-1)
	for i := 1; i < nl-1; i++ {
		kappa, ok := curvatureAt(fits, pens, llas, i)
		if !ok {
			continue
		}
		// Strict > keeps the first (smallest-λ) candidate on exact ties.
		if a := math.Abs(kappa); a > bestAbs {
			bestAbs = a
			best = i
		}
	}
	if best < 0 {
		return Result{}, ErrDegenerateCurve
	}

	logLambda := llas[best]
	lambda := math.Pow(10, logLambda)
	if err := smooth.SmoothInto(z, y, w, lambda, ws); err != nil {
		return Result{}, err
	}
	return Result{Z: z, Lambda: lambda, LogLambda: logLambda}, nil
}

// curvatureAt evaluates the signed curvature of the (R, F) curve at
// interior grid index i via central finite differences that tolerate
// uneven spacing. It reports ok=false when any stencil value is
// non-finite, leaving the candidate out of the competition.
func curvatureAt(fits, pens, llas []float64, i int) (float64, bool) {
	f0, f1, f2 := fits[i-1], fits[i], fits[i+1]
	r0, r1, r2 := pens[i-1], pens[i], pens[i+1]
	if !finite(f0) || !finite(f1) || !finite(f2) || !finite(r0) || !finite(r1) || !finite(r2) {
		return 0, false
	}

	h1 := llas[i] - llas[i-1]
	h2 := llas[i+1] - llas[i]
	span := h1 + h2

	dF := (f2 - f0) / span
	dR := (r2 - r0) / span
	ddF := 2 * ((f2-f1)/h2 - (f1-f0)/h1) / span
	ddR := 2 * ((r2-r1)/h2 - (r1-r0)/h1) / span

	den := math.Pow(dF*dF+dR*dR, 1.5)
	if den == 0 || math.IsNaN(den) {
		return 0, false
	}
	return (dF*ddR - dR*ddF) / den, true
}

// validateGrid enforces the candidate-grid preconditions.
func validateGrid(llas []float64) error {
	if len(llas) < 3 {
		return ErrGridTooShort
	}
	for i := 1; i < len(llas); i++ {
		if !(llas[i] > llas[i-1]) {
			return ErrGridNotAscending
		}
	}
	return nil
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
