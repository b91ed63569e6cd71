package dlx

import "math"

// AddRow inserts one input row and returns its ordinal. Ordinals count
// every call, so the caller can index its own row storage with them.
//
// For each element in order: find the column by a linear equality scan of
// the live header list (appending a fresh header at the right end when the
// element is new), append a cell at the bottom of that column, and splice
// the cell into the row's horizontal list so that rightward traversal
// visits elements in input order.
//
// An empty row is dropped: it creates no cells and cannot contribute to
// any cover, but it still consumes an ordinal.
//
// Complexity: O(len(elems) · columns) time for the equality scans,
// amortized O(1) per cell otherwise.
func (m *Matrix[E]) AddRow(elems []E) (int32, error) {
	// 1. Assign the ordinal, guarding the int32 space.
	if m.nextRow == math.MaxInt32 {
		return 0, ErrTooManyRows
	}
	id := m.nextRow
	m.nextRow++

	// 2. Insert one cell per element.
	first := int32(-1) // arena index of the row's first cell
	var label E
	for _, label = range elems {
		// 2a. Find or append the column for this element.
		c, err := m.findColumn(label)
		if err != nil {
			return 0, err
		}

		// 2b. Allocate the cell and link it at the bottom of the column,
		//     just above the header sentinel.
		head := m.cols[c].head
		i, err := m.alloc(node{
			up:   m.nodes[head].up,
			down: head,
			col:  c,
			row:  id,
		})
		if err != nil {
			return 0, err
		}
		m.nodes[m.nodes[head].up].down = i
		m.nodes[head].up = i
		m.cols[c].count++

		// 2c. Splice into the row's horizontal list, to the left of the
		//     first cell. The first cell forms a singleton loop.
		if first < 0 {
			first = i
			m.nodes[i].left, m.nodes[i].right = i, i
		} else {
			m.nodes[i].left = m.nodes[first].left
			m.nodes[i].right = first
			m.nodes[m.nodes[first].left].right = i
			m.nodes[first].left = i
		}
	}

	return id, nil
}

// findColumn returns the column covering label, scanning the live header
// list left to right; a label not seen before gets a fresh header appended
// at the right end with count 0.
func (m *Matrix[E]) findColumn(label E) (int32, error) {
	// 1. Linear scan of the universe for this element.
	var n int32
	for n = m.nodes[root].right; n != root; n = m.nodes[n].right {
		if c := m.nodes[n].col; m.cols[c].label == label {
			return c, nil
		}
	}

	// 2. New header sentinel: a self-linked vertical singleton, appended at
	//    the left of root (the right end of the header list).
	c := int32(len(m.cols))
	h, err := m.alloc(node{
		left:  m.nodes[root].left,
		right: root,
		col:   c,
		row:   noRow,
	})
	if err != nil {
		return 0, err
	}
	m.nodes[h].up, m.nodes[h].down = h, h
	m.nodes[m.nodes[root].left].right = h
	m.nodes[root].left = h
	m.cols = append(m.cols, column[E]{head: h, label: label})

	return c, nil
}

// alloc appends a cell to the arena and returns its index. Vertical links
// equal to the new index must be patched by the caller after return.
func (m *Matrix[E]) alloc(n node) (int32, error) {
	if len(m.nodes) == math.MaxInt32 {
		return 0, ErrTooManyCells
	}
	m.nodes = append(m.nodes, n)

	return int32(len(m.nodes) - 1), nil
}

// Cover removes column c and every row with a cell in c from the matrix.
// The header leaves the horizontal list; each affected cell leaves its own
// column's vertical list, decrementing that column's count. Unlinked cells
// keep their link fields, so Uncover restores the exact previous state.
func (m *Matrix[E]) Cover(c int32) {
	// 1. Unlink the header from the horizontal list.
	h := m.cols[c].head
	m.nodes[m.nodes[h].left].right = m.nodes[h].right
	m.nodes[m.nodes[h].right].left = m.nodes[h].left

	// 2. Unlink every other cell of every row in this column. Walk down,
	//    then right; Uncover walks up, then left, undoing in reverse.
	var r, e int32
	for r = m.nodes[h].down; r != h; r = m.nodes[r].down {
		for e = m.nodes[r].right; e != r; e = m.nodes[e].right {
			m.nodes[m.nodes[e].up].down = m.nodes[e].down
			m.nodes[m.nodes[e].down].up = m.nodes[e].up
			m.cols[m.nodes[e].col].count--
		}
	}
}

// Uncover is the exact inverse of Cover. It must be called in the exact
// reverse order of the Cover calls, so that the symmetric relinking
// reproduces the original topology.
func (m *Matrix[E]) Uncover(c int32) {
	// 1. Relink every cell removed by Cover, in reverse traversal order:
	//    up, then left.
	h := m.cols[c].head
	var r, e int32
	for r = m.nodes[h].up; r != h; r = m.nodes[r].up {
		for e = m.nodes[r].left; e != r; e = m.nodes[e].left {
			m.cols[m.nodes[e].col].count++
			m.nodes[m.nodes[e].up].down = e
			m.nodes[m.nodes[e].down].up = e
		}
	}

	// 2. Relink the header into the horizontal list.
	m.nodes[m.nodes[h].left].right = h
	m.nodes[m.nodes[h].right].left = h
}

// CoverRow covers the column of every cell in the row containing cell,
// walking rightward from cell inclusive. Selecting a row for the solution
// removes every row that shares an element with it.
func (m *Matrix[E]) CoverRow(cell int32) {
	e := cell
	for {
		m.Cover(m.nodes[e].col)
		e = m.nodes[e].right
		if e == cell {
			return
		}
	}
}

// UncoverRow is the exact inverse of CoverRow: it walks leftward from
// cell's left neighbor inclusive, uncovering each visited cell's column in
// the reverse of the order CoverRow covered them.
func (m *Matrix[E]) UncoverRow(cell int32) {
	start := m.nodes[cell].left
	e := start
	for {
		m.Uncover(m.nodes[e].col)
		e = m.nodes[e].left
		if e == start {
			return
		}
	}
}

// SmallestColumn scans the live header list once and returns the column
// with the fewest cells, together with that count. Ties break toward the
// first column encountered, i.e. the leftmost, earliest-inserted one;
// this tie-break is part of the deterministic enumeration contract.
//
// ok is false when no columns remain: the matrix is in a solution state.
func (m *Matrix[E]) SmallestColumn() (col int32, count int32, ok bool) {
	best := noColumn
	var bestCount int32
	var n, c int32
	for n = m.nodes[root].right; n != root; n = m.nodes[n].right {
		c = m.nodes[n].col
		if best == noColumn || m.cols[c].count < bestCount {
			best, bestCount = c, m.cols[c].count
		}
	}
	if best == noColumn {
		return 0, 0, false
	}

	return best, bestCount, true
}

// First returns the topmost cell of column c's vertical list. The caller
// must ensure the column is non-empty (count ≥ 1).
func (m *Matrix[E]) First(c int32) int32 {
	return m.nodes[m.cols[c].head].down
}

// Below returns the cell beneath cell in its column. ok is false once the
// walk wraps to the header sentinel: the column holds no further cells.
func (m *Matrix[E]) Below(cell int32) (int32, bool) {
	d := m.nodes[cell].down
	if m.nodes[d].row == noRow {
		return 0, false
	}

	return d, true
}

// Row returns the ordinal of the input row that cell belongs to.
func (m *Matrix[E]) Row(cell int32) int32 {
	return m.nodes[cell].row
}

// Len returns the number of columns ever created, the size of the
// universe. It is unaffected by covering and bounds the solution depth.
func (m *Matrix[E]) Len() int {
	return len(m.cols)
}

// Label returns the universe element that column c covers.
func (m *Matrix[E]) Label(c int32) E {
	return m.cols[c].label
}

// Count returns the number of cells currently linked into column c.
func (m *Matrix[E]) Count(c int32) int {
	return int(m.cols[c].count)
}

// Linked reports whether column c is currently part of the matrix, i.e.
// not covered. A covered header keeps its own link fields but its former
// neighbors no longer point back at it.
func (m *Matrix[E]) Linked(c int32) bool {
	h := m.cols[c].head

	return m.nodes[m.nodes[h].left].right == h
}
