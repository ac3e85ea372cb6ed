// Package banded defines the System and Workspace types for the
// pentadiagonal LDLᵀ solver.
package banded

// System is a symmetric pentadiagonal linear system A·z = RHS.
//
// Only the upper triangle is stored; the subdiagonals are implied by
// symmetry. For a system of size n:
//
//   - Diag holds A[i][i],   length n
//   - Off1 holds A[i][i+1], length n-1
//   - Off2 holds A[i][i+2], length n-2
//   - RHS  holds the right-hand side, length n
//
// The slices are borrowed, never retained: Solve reads them and writes only
// into dst and the workspace.
type System struct {
	Diag []float64
	Off1 []float64
	Off2 []float64
	RHS  []float64
}

// Workspace holds the factorization scratch (pivots d, subdiagonal ratios
// c and e) so repeated solves of same-sized systems allocate nothing.
//
// A Workspace is not safe for concurrent use; give each goroutine its own.
type Workspace struct {
	d, c, e []float64
}

// NewWorkspace returns a Workspace sized for systems of n unknowns.
// It grows automatically if a later Solve needs more room.
func NewWorkspace(n int) *Workspace {
	ws := &Workspace{}
	ws.grow(n)
	return ws
}

// grow ensures the scratch slices can hold a factorization of size n.
func (ws *Workspace) grow(n int) {
	if cap(ws.d) < n {
		ws.d = make([]float64, n)
		ws.c = make([]float64, n)
		ws.e = make([]float64, n)
	}
	ws.d = ws.d[:n]
	ws.c = ws.c[:n]
	ws.e = ws.e[:n]
}
