package smooth

import (
	"math"

	"github.com/katalvlaran/whittaker/banded"
)

// maxEnvelopeIterations bounds the residual-sign reweighting loop of
// SmoothAsymmetric. Ten passes is enough for the weights to stabilize on
// real satellite series; the loop exits earlier as soon as they do.
const maxEnvelopeIterations = 10

// Smooth fits the Whittaker smoother to y with weights w and smoothing
// parameter lambda, returning the fitted series z of the same length.
//
// Preconditions (validated, see package errors): len(y) == len(w) ≥ 3,
// lambda positive and finite, all weights finite and ≥ 0, at least one
// weight > 0.
//
// Example:
//
//	z, err := smooth.Smooth(y, w, 10)
func Smooth(y, w []float64, lambda float64) ([]float64, error) {
	if err := validate(y, w, lambda); err != nil {
		return nil, err
	}
	z := make([]float64, len(y))
	if err := SmoothInto(z, y, w, lambda, nil); err != nil {
		return nil, err
	}
	return z, nil
}

// SmoothInto is the allocation-light form of Smooth: the fit is written
// into dst (length len(y)) and scratch comes from ws when non-nil.
// With a reused Workspace a call performs no allocation at all.
func SmoothInto(dst, y, w []float64, lambda float64, ws *Workspace) error {
	if err := validate(y, w, lambda); err != nil {
		return err
	}
	n := len(y)
	if len(dst) != n {
		return ErrLengthMismatch
	}
	if ws == nil {
		ws = NewWorkspace(n)
	} else {
		ws.grow(n)
	}

	buildSystem(ws, y, w, lambda)
	return ws.sys.Solve(dst, ws.bw)
}

// SmoothAsymmetric fits an envelope instead of a centered curve: after each
// fit, samples above it keep weight w·p/max(p,1−p) and samples below keep
// w·(1−p)/max(p,1−p), and the fit is repeated until the weights stabilize
// (at most maxEnvelopeIterations passes). Pinning the larger reweight
// factor to 1 keeps the update free of a uniform scale, which at fixed λ
// would act as a hidden change of λ itself; with p = 0.5 the weights are
// left untouched and the result equals Smooth(y, w, lambda) exactly.
// p > 0.5 biases the curve toward an upper envelope, p < 0.5 toward a
// lower one; p must lie strictly in (0, 1).
func SmoothAsymmetric(y, w []float64, lambda, p float64) ([]float64, error) {
	if !(p > 0 && p < 1) {
		return nil, ErrAsymmetryOutOfRange
	}
	if err := validate(y, w, lambda); err != nil {
		return nil, err
	}

	n := len(y)
	ws := NewWorkspace(n)
	z := make([]float64, n)
	scale := math.Max(p, 1-p)
	wcur := ws.wbuf
	copy(wcur, w)

	for it := 0; it < maxEnvelopeIterations; it++ {
		if err := SmoothInto(z, y, wcur, lambda, ws); err != nil {
			return nil, err
		}
		var delta float64
		for i := 0; i < n; i++ {
			next := w[i] * (1 - p) / scale
			if y[i]-z[i] >= 0 {
				next = w[i] * p / scale
			}
			delta += math.Abs(next - wcur[i])
			wcur[i] = next
		}
		if delta == 0 {
			break
		}
	}
	return z, nil
}

// buildSystem fills ws with the pentadiagonal normal equations
// (W + λ·DᵗD)·z = W·y, where D is the (n−2)×n second-difference operator.
// Row r of D carries (1, −2, 1) at columns r, r+1, r+2, so each entry of
// DᵗD sums the products over the rows that touch both of its columns.
func buildSystem(ws *Workspace, y, w []float64, lambda float64) {
	n := len(y)

	for i := 0; i < n; i++ {
		dd := 0.0
		if i <= n-3 { // row i: coefficient 1 at column i
			dd++
		}
		if i >= 1 && i <= n-2 { // row i-1: coefficient -2 at column i
			dd += 4
		}
		if i >= 2 { // row i-2: coefficient 1 at column i
			dd++
		}
		ws.diag[i] = w[i] + lambda*dd
		ws.rhs[i] = w[i] * y[i]
	}

	for i := 0; i < n-1; i++ {
		od := 0.0
		if i <= n-3 { // row i: 1·(−2)
			od -= 2
		}
		if i >= 1 { // row i-1: (−2)·1
			od -= 2
		}
		ws.off1[i] = lambda * od
	}

	for i := 0; i < n-2; i++ { // row i: 1·1
		ws.off2[i] = lambda
	}

	ws.sys = banded.System{Diag: ws.diag, Off1: ws.off1, Off2: ws.off2, RHS: ws.rhs}
}

// validate enforces the public preconditions shared by all fits.
func validate(y, w []float64, lambda float64) error {
	if len(y) != len(w) {
		return ErrLengthMismatch
	}
	if len(y) < 3 {
		return ErrTooShort
	}
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda <= 0 {
		return ErrNonPositiveLambda
	}
	hasPositive := false
	for _, wi := range w {
		if math.IsNaN(wi) || math.IsInf(wi, 0) {
			return ErrNonFiniteWeight
		}
		if wi < 0 {
			return ErrNegativeWeight
		}
		if wi > 0 {
			hasPositive = true
		}
	}
	if !hasPositive {
		return ErrAllWeightsZero
	}
	return nil
}
