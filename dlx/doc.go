// Package dlx implements the toroidal sparse-matrix half of Knuth's
// Dancing Links: an arena of four-way circularly linked cells over which
// columns can be covered and uncovered in O(1) per touched node.
//
// What:
//
//   - Matrix[E]: a 0/1 incidence matrix for subsets of a universe of
//     comparable elements. Columns are universe elements, rows are input
//     subsets; a cell marks membership.
//   - AddRow: incremental build. Columns appear in first-use order; cells
//     append at the bottom of their column and keep row input order.
//   - Cover / Uncover: remove a column and every row touching it; restore
//     exactly, because unlinked cells retain their own link fields.
//   - CoverRow / UncoverRow: cover (uncover) the columns of every cell in
//     one row — selecting (deselecting) the row for a partial solution.
//   - SmallestColumn: the S-heuristic — branch on the column with the
//     fewest live rows, ties to the leftmost.
//   - Validate: full structural invariant check for tests and diagnostics.
//
// Why:
//
//   - Exact-cover search spends its whole life removing and restoring
//     rows; the dancing-links trick makes both directions O(1) per node
//     with zero allocation, so backtracking is almost free.
//   - The arena-with-indices layout keeps the inherently cyclic structure
//     free of pointer cycles, cache-friendly, and trivially collectable.
//
// Ownership: a Matrix is built once, then exclusively driven by one
// search. No locking is performed; concurrent use is not supported.
//
// Complexity:
//
//   - AddRow:          O(cells · columns) total build time (linear column scans)
//   - Cover/Uncover:   O(touched cells), zero allocation
//   - SmallestColumn:  O(live columns)
//   - Validate:        O(live cells)
//
// Errors:
//
//   - ErrTooManyRows / ErrTooManyCells   int32 index space exhausted during build
//   - ErrLinkIdentity, ErrColumnMismatch,
//     ErrCountMismatch, ErrRootNotEmpty  Validate diagnostics (errors.Is)
//
// See cover/ for the backtracking iterator that drives this matrix.
package dlx
