package cover

import "github.com/kwaters/exactcover/dlx"

// MatrixForTest exposes the underlying matrix so tests can assert the
// structural invariants between Next calls and the full restoration of the
// matrix after exhaustion.
func (it *Coverings[E]) MatrixForTest() *dlx.Matrix[E] {
	return it.m
}

// DepthForTest reports the current solution-stack depth.
func (it *Coverings[E]) DepthForTest() int {
	return len(it.solution)
}
