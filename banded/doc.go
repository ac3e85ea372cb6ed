// Package banded solves symmetric pentadiagonal, positive-definite linear
// systems in O(n) time and memory via an LDLᵀ factorization.
//
// 🚀 What is a banded system?
//
//	A matrix whose nonzero entries sit in a narrow band around the main
//	diagonal. A pentadiagonal matrix (half-bandwidth 2) is fully described
//	by three contiguous slices — the main diagonal plus two superdiagonals —
//	so factorizing and solving never touches an n×n array:
//		• Time:   O(n)
//		• Memory: O(n) (five diagonals total, including the factors)
//
// This is exactly the shape of the normal equations of second-difference
// penalized least squares, which is what the smooth and vcurve packages
// feed into Solve once per series.
//
// ⚙️ Usage:
//
//	sys := &banded.System{
//	  Diag: d,   // length n
//	  Off1: o1,  // length n-1, first superdiagonal
//	  Off2: o2,  // length n-2, second superdiagonal
//	  RHS:  b,   // length n
//	}
//	z := make([]float64, n)
//	if err := sys.Solve(z, nil); err != nil {
//	  // handle ErrSystemTooSmall, ErrDimensionMismatch, ErrNotPositiveDefinite
//	}
//
// For batch callers (one solve per pixel), pass a reused Workspace to keep
// the factorization scratch out of the allocator:
//
//	ws := banded.NewWorkspace(n)
//	for _, sys := range systems {
//	  _ = sys.Solve(z, ws)
//	}
//
// Solve never caches anything between calls: a Workspace is an explicit,
// caller-owned buffer, not a hidden static cache.
package banded
