// Package dlx defines the arena-backed node and column types of the sparse
// matrix, its sentinel errors, and the Matrix constructor.
//
// Representation: all cells live in one contiguous arena and reference each
// other by int32 index, never by pointer. Headers are ordinary arena cells
// fused into their column's vertical list as sentinels; their bookkeeping
// (live count, element label) lives in a parallel column table. Node 0 is
// the root sentinel heading the horizontal list of column headers.
//
// Errors:
//
//	ErrTooManyRows     - the int32 row-ordinal space is exhausted.
//	ErrTooManyCells    - the int32 arena index space is exhausted.
//	ErrLinkIdentity    - Validate: a circular-list identity is violated.
//	ErrColumnMismatch  - Validate: a cell names a column it is not linked under.
//	ErrCountMismatch   - Validate: a header count disagrees with its list.
//	ErrRootNotEmpty    - Validate: the root sentinel has a vertical list.
package dlx

import "errors"

// Sentinel errors for matrix construction and validation.
var (
	// ErrTooManyRows indicates the caller added more than MaxInt32 rows.
	ErrTooManyRows = errors.New("dlx: row ordinal space exhausted")

	// ErrTooManyCells indicates the arena outgrew the int32 index space.
	ErrTooManyCells = errors.New("dlx: cell arena space exhausted")

	// ErrLinkIdentity indicates a violated circular-list identity
	// (x.left.right == x, x.right.left == x, x.up.down == x, x.down.up == x).
	ErrLinkIdentity = errors.New("dlx: circular list identity violated")

	// ErrColumnMismatch indicates a cell whose column back-reference does not
	// name the header whose vertical list it is linked under.
	ErrColumnMismatch = errors.New("dlx: cell column mismatch")

	// ErrCountMismatch indicates a column header whose count differs from the
	// number of cells actually linked into its vertical list.
	ErrCountMismatch = errors.New("dlx: column count mismatch")

	// ErrRootNotEmpty indicates cells linked into the root sentinel's
	// vertical list; the root heads columns, never cells.
	ErrRootNotEmpty = errors.New("dlx: root vertical list not empty")
)

const (
	// root is the arena index of the root sentinel.
	root int32 = 0

	// noColumn marks the root, which belongs to no column.
	noColumn int32 = -1

	// noRow marks header sentinels and the root, which belong to no row.
	noRow int32 = -1
)

// node is one cell of the toroidal structure. The four link fields are
// arena indices; an unlinked cell keeps its own links so relinking it is
// O(1) and restores the exact previous topology.
type node struct {
	up, down    int32
	left, right int32

	// col indexes the owning column in Matrix.cols; noColumn at the root.
	col int32

	// row is the caller's row ordinal; noRow for headers and the root.
	// Every cell of one input row carries the same ordinal.
	row int32
}

// column is the bookkeeping half of a header: the arena index of its
// sentinel cell, the number of cells currently linked into its vertical
// list, and the universe element it covers.
type column[E comparable] struct {
	head  int32
	count int32
	label E
}

// Matrix is a sparse 0/1 incidence matrix in toroidal doubly-linked form.
// The arena owns every cell; cover and uncover merely unlink and relink
// cells in place, so search performs no allocation.
//
// A Matrix is exclusively owned by one search; it is not safe for
// concurrent use.
type Matrix[E comparable] struct {
	nodes []node
	cols  []column[E]

	// nextRow is the ordinal handed to the next AddRow call.
	nextRow int32
}

// New returns an empty matrix: the root sentinel alone, linked to itself in
// both directions.
func New[E comparable]() *Matrix[E] {
	m := &Matrix[E]{nodes: make([]node, 1)}
	m.nodes[root] = node{up: root, down: root, left: root, right: root, col: noColumn, row: noRow}

	return m
}
