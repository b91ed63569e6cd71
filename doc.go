// Package exactcover enumerates exact covers with Knuth's Dancing Links,
// driven as a resumable pull-based iterator that yields one covering at a
// time.
//
// 🚀 What is exactcover?
//
//	Given a collection of subsets of an implicit universe, an exact cover is
//	a sub-collection whose members are pairwise disjoint and whose union is
//	the whole universe. This library finds all of them, lazily:
//		• Sparse matrix: a toroidal four-way linked 0/1 incidence structure
//		• Cover/uncover: O(1)-per-node removal and exact restoration
//		• Search: non-recursive backtracking with the smallest-column heuristic
//		• Iteration: control returns to the caller between solutions
//
// ✨ Why choose exactcover?
//
//   - Deterministic – the same input always yields the same solutions in
//     the same order
//   - Allocation-free search – the matrix and solution stack are laid out
//     during construction; cover, uncover and backtracking perform zero
//     heap traffic, and Next allocates only the slice it yields
//   - Generic – columns are labeled by any comparable element type
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under two subpackages:
//
//	dlx/   — the toroidal sparse matrix: build, cover, uncover, column choice
//	cover/ — the search iterator over a dlx matrix, yielding row sets
//
// Quick example, Knuth's original 6×7 matrix:
//
//	it, _ := cover.New([][]string{
//		{"c", "e", "f"},
//		{"a", "d", "g"},
//		{"b", "c", "f"},
//		{"a", "d"},
//		{"b", "g"},
//		{"d", "e", "g"},
//	})
//	for s := range it.All() {
//		fmt.Println(s) // the single cover: rows {c e f}, {b g}, {a d}
//	}
//
//	go get github.com/kwaters/exactcover
package exactcover
