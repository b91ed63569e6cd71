package dlx

import "slices"

// This file exposes private state for tests: the dlx_test and cover_test
// packages assert on deep copies of the internals. It is an ordinary
// package file, so the helpers are part of the package build.

// StateForTest returns a deep copy of the arena and column table. Tests
// compare two snapshots with assert.Equal to prove that a sequence of
// cover/uncover operations restored the matrix to an identical state.
func (m *Matrix[E]) StateForTest() any {
	return struct {
		Nodes []node
		Cols  []column[E]
	}{slices.Clone(m.nodes), slices.Clone(m.cols)}
}

// CellsForTest returns the total number of arena cells, headers and root
// included. Build-shape assertions use it to prove empty rows add nothing.
func (m *Matrix[E]) CellsForTest() int {
	return len(m.nodes)
}
