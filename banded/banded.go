package banded

import "errors"

// Solve — symmetric pentadiagonal LDLᵀ solve
//
// Description:
//
//	Factorizes A = L·D·Lᵀ where L is unit lower triangular with two
//	subdiagonals and D is diagonal, then forward/back substitutes.
//	A is given by its upper triangle (Diag, Off1, Off2); symmetry
//	supplies the rest.
//
// Algorithm Outline:
//  1. d[0] = Diag[0]; c[0] = Off1[0]/d[0]; e[0] = Off2[0]/d[0]
//  2. d[1] = Diag[1] − c[0]²·d[0]
//     c[1] = (Off1[1] − c[0]·e[0]·d[0]) / d[1]
//     e[1] = Off2[1] / d[1]                      (when n > 3)
//  3. For i = 2..n-1:
//     d[i] = Diag[i] − e[i-2]²·d[i-2] − c[i-1]²·d[i-1]
//     c[i] = (Off1[i] − c[i-1]·e[i-1]·d[i-1]) / d[i]   (i < n-1)
//     e[i] = Off2[i] / d[i]                            (i < n-2)
//  4. Forward:  z[i] = RHS[i] − c[i-1]·z[i-1] − e[i-2]·z[i-2]
//  5. Backward: z[i] = z[i]/d[i] − c[i]·z[i+1] − e[i]·z[i+2]
//
// Each pivot d[i] must be strictly positive; a non-positive pivot means A
// is not positive definite and the solve aborts before emitting NaN.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n) — three scratch diagonals, reusable via Workspace
//
// Errors:
//   - ErrSystemTooSmall       — fewer than 3 unknowns.
//   - ErrDimensionMismatch    — slice lengths inconsistent with len(Diag).
//   - ErrNotPositiveDefinite  — a pivot ≤ 0 during factorization.
var (
	// ErrSystemTooSmall indicates the system has fewer than 3 unknowns.
	ErrSystemTooSmall = errors.New("banded: system must have at least 3 unknowns")

	// ErrDimensionMismatch indicates Off1, Off2, RHS or dst length is
	// inconsistent with len(Diag).
	ErrDimensionMismatch = errors.New("banded: diagonal, RHS and dst lengths are inconsistent")

	// ErrNotPositiveDefinite indicates a non-positive pivot was met during
	// factorization, so the system has no LDLᵀ decomposition.
	ErrNotPositiveDefinite = errors.New("banded: system is not positive definite")
)

// Solve solves A·z = RHS into dst. dst must have length len(Diag).
//
// ws may be nil, in which case scratch is allocated locally and released at
// return. Passing a Workspace reuses that scratch across calls.
func (sys *System) Solve(dst []float64, ws *Workspace) error {
	n := len(sys.Diag)
	if n < 3 {
		return ErrSystemTooSmall
	}
	if len(sys.Off1) != n-1 || len(sys.Off2) != n-2 || len(sys.RHS) != n || len(dst) != n {
		return ErrDimensionMismatch
	}

	if ws == nil {
		ws = NewWorkspace(n)
	} else {
		ws.grow(n)
	}
	d, c, e := ws.d, ws.c, ws.e

	// Factorize A = L·D·Lᵀ.
	d[0] = sys.Diag[0]
	if d[0] <= 0 {
		return ErrNotPositiveDefinite
	}
	c[0] = sys.Off1[0] / d[0]
	e[0] = sys.Off2[0] / d[0]

	d[1] = sys.Diag[1] - c[0]*c[0]*d[0]
	if d[1] <= 0 {
		return ErrNotPositiveDefinite
	}
	c[1] = (sys.Off1[1] - c[0]*e[0]*d[0]) / d[1]
	if n > 3 {
		e[1] = sys.Off2[1] / d[1]
	}

	for i := 2; i < n; i++ {
		d[i] = sys.Diag[i] - e[i-2]*e[i-2]*d[i-2] - c[i-1]*c[i-1]*d[i-1]
		if d[i] <= 0 {
			return ErrNotPositiveDefinite
		}
		if i < n-1 {
			c[i] = (sys.Off1[i] - c[i-1]*e[i-1]*d[i-1]) / d[i]
		}
		if i < n-2 {
			e[i] = sys.Off2[i] / d[i]
		}
	}

	// Forward substitution: L·(D·Lᵀ·z) = RHS.
	dst[0] = sys.RHS[0]
	dst[1] = sys.RHS[1] - c[0]*dst[0]
	for i := 2; i < n; i++ {
		dst[i] = sys.RHS[i] - c[i-1]*dst[i-1] - e[i-2]*dst[i-2]
	}

	// Backward substitution: Lᵀ·z = D⁻¹·(forward result).
	dst[n-1] /= d[n-1]
	dst[n-2] = dst[n-2]/d[n-2] - c[n-2]*dst[n-1]
	for i := n - 3; i >= 0; i-- {
		dst[i] = dst[i]/d[i] - c[i]*dst[i+1] - e[i]*dst[i+2]
	}

	return nil
}
