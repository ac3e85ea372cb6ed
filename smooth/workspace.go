package smooth

import "github.com/katalvlaran/whittaker/banded"

// Workspace bundles the normal-system diagonals, the right-hand side and
// the banded factorization scratch, so batch callers can run one fit per
// pixel without touching the allocator.
//
// A Workspace is not safe for concurrent use; give each goroutine its own.
type Workspace struct {
	diag, off1, off2, rhs []float64
	wbuf                  []float64 // effective weights for envelope fitting
	sys                   banded.System
	bw                    *banded.Workspace
}

// NewWorkspace returns a Workspace sized for series of n samples.
// It grows automatically if a later call needs more room.
func NewWorkspace(n int) *Workspace {
	ws := &Workspace{bw: banded.NewWorkspace(n)}
	ws.grow(n)
	return ws
}

// grow ensures all buffers can hold a system of n unknowns.
func (ws *Workspace) grow(n int) {
	if n < 3 {
		n = 3 // smallest admissible system; keeps reslicing in range
	}
	if cap(ws.diag) < n {
		ws.diag = make([]float64, n)
		ws.off1 = make([]float64, n)
		ws.off2 = make([]float64, n)
		ws.rhs = make([]float64, n)
		ws.wbuf = make([]float64, n)
	}
	ws.diag = ws.diag[:n]
	ws.off1 = ws.off1[:n-1]
	ws.off2 = ws.off2[:n-2]
	ws.rhs = ws.rhs[:n]
	ws.wbuf = ws.wbuf[:n]
	if ws.bw == nil {
		ws.bw = banded.NewWorkspace(n)
	}
}
