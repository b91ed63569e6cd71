// Package cover enumerates exact covers: sub-collections of the input rows
// that are pairwise disjoint and whose union is the whole universe.
//
// What:
//
//   - New(rows): reduce the input to a dlx sparse matrix. Elements are any
//     comparable type; the universe is implicit — the union of all rows.
//   - Coverings.Next: run the backtracking search until the next exact
//     cover, yield it, and pause with the matrix still covered so the
//     search can resume where it left off.
//   - Coverings.All: the same enumeration as a range-over-func sequence.
//
// Why:
//
//   - Tiling puzzles (pentominoes), Sudoku, set partitioning and crew
//     scheduling all reduce naturally to exact cover; one deterministic
//     enumerator covers them all.
//   - The pull-based shape keeps control with the caller between
//     solutions: take one, take a thousand, or stop early at no cost.
//
// Determinism: the same input always yields the same solutions in the same
// order — smallest column first (ties to the earliest-inserted column),
// rows within a column top to bottom, everything else in input order.
//
// Allocation: construction builds the matrix and one solution stack sized
// to the universe; Next allocates nothing but the yielded slice.
//
// Boundary behavior:
//
//   - No rows: exactly one solution, the empty cover, then exhaustion
//     (the union of no rows is the empty universe).
//   - Duplicate rows: each is a distinct choice and appears in its own
//     solutions.
//   - After exhaustion, Next keeps reporting exhaustion; iterators are
//     not resettable — build a new one instead.
//
// Errors:
//
//   - dlx.ErrTooManyRows / dlx.ErrTooManyCells  input exceeds the int32 arena
//
// Complexity: worst-case exponential in the number of rows, as exact cover
// is NP-complete; the smallest-column heuristic keeps the branching factor
// minimal at every depth.
package cover
