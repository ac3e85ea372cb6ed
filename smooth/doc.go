// Package smooth applies the Whittaker smoother to weighted, equally-spaced
// series: a penalized least-squares fit with a second-difference roughness
// penalty, solved in O(n) via the banded package.
//
// 🚀 What does it solve?
//
//	For observations y, non-negative weights w and smoothing parameter λ,
//	the fit z minimizes
//
//		Σ wᵢ·(yᵢ − zᵢ)² + λ·Σ (zᵢ − 2zᵢ₊₁ + zᵢ₊₂)²
//
//	which is the pentadiagonal normal system (W + λ·DᵗD)·z = W·y.
//	Larger λ means a smoother, less faithful fit. A zero weight keeps the
//	slot in the series but removes its pull on the fit, so masked samples
//	are interpolated from their neighbors rather than ignored.
//
// ✨ Key features:
//   - Smooth: one fixed-λ fit, allocate-and-return
//   - SmoothInto: allocation-free variant for batch loops over pixels
//   - SmoothAsymmetric: envelope fit biased above (p>0.5) or below (p<0.5)
//     the data via residual-sign reweighting
//
// ⚙️ Usage:
//
//	z, err := smooth.Smooth(y, w, 10)
//	if err != nil {
//	  // handle ErrLengthMismatch, ErrTooShort, ErrNonPositiveLambda,
//	  // ErrNegativeWeight, ErrNonFiniteWeight, ErrAllWeightsZero
//	}
//
// Batch callers reuse one Workspace per goroutine:
//
//	ws := smooth.NewWorkspace(n)
//	for _, px := range pixels {
//	  _ = smooth.SmoothInto(px.Z, px.Y, px.W, lambda, ws)
//	}
//
// Preconditions are validated at the boundary and rejected with sentinel
// errors; an invalid call never returns a partially written or NaN-laced
// output. All functions are pure and safe for concurrent use on disjoint
// buffers.
//
// Performance:
//
//   - Time:   O(n) per call
//   - Memory: O(n) scratch, zero per-call allocation with a Workspace
package smooth
