package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box tests: each one corrupts the arena directly and checks that
// Validate reports the matching sentinel. A checker that never fires is
// worse than none, so every violation class gets a corruption of its own.

func corruptible(t *testing.T) *Matrix[string] {
	t.Helper()
	m := New[string]()
	for _, row := range [][]string{{"a", "b"}, {"b", "c"}} {
		_, err := m.AddRow(row)
		require.NoError(t, err)
	}
	require.NoError(t, m.Validate())

	return m
}

func TestValidate_CleanMatrix(t *testing.T) {
	assert.NoError(t, corruptible(t).Validate())
}

func TestValidate_RootNotEmpty(t *testing.T) {
	m := corruptible(t)
	m.nodes[root].down = m.cols[0].head

	assert.ErrorIs(t, m.Validate(), ErrRootNotEmpty)
}

func TestValidate_HorizontalIdentity(t *testing.T) {
	m := corruptible(t)
	// Point a header's left at itself; its neighbor's right still names it,
	// so x.left.right == x fails at the header.
	h := m.cols[1].head
	m.nodes[h].left = h

	assert.ErrorIs(t, m.Validate(), ErrLinkIdentity)
}

func TestValidate_VerticalIdentity(t *testing.T) {
	m := corruptible(t)
	// First cell of column b: break its up link.
	cell := m.nodes[m.cols[1].head].down
	m.nodes[cell].up = cell

	assert.ErrorIs(t, m.Validate(), ErrLinkIdentity)
}

func TestValidate_ColumnMismatch(t *testing.T) {
	m := corruptible(t)
	cell := m.nodes[m.cols[0].head].down
	m.nodes[cell].col = 2

	assert.ErrorIs(t, m.Validate(), ErrColumnMismatch)
}

func TestValidate_CountMismatch(t *testing.T) {
	m := corruptible(t)
	m.cols[1].count++

	assert.ErrorIs(t, m.Validate(), ErrCountMismatch)
}
