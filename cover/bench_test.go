package cover_test

import (
	"testing"

	"github.com/kwaters/exactcover/cover"
)

// BenchmarkCoverings_Bell4 measures full enumeration of all 15 partitions
// of a 4-element universe (rows = every non-empty subset). Exercises the
// whole search loop: column choice, cover, uncover, backtrack.
func BenchmarkCoverings_Bell4(b *testing.B) {
	// 1. Rows: the 15 non-empty subsets of {a,b,c,d}.
	elems := []string{"a", "b", "c", "d"}
	var rows [][]string
	for mask := 1; mask < 1<<len(elems); mask++ {
		var row []string
		for i, e := range elems {
			if mask&(1<<i) != 0 {
				row = append(row, e)
			}
		}
		rows = append(rows, row)
	}

	// 2. Enumerate everything, b.N times. Construction is inside the loop
	//    on purpose: iterators are single-use.
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, err := cover.New(rows)
		if err != nil {
			b.Fatal(err)
		}
		n := 0
		for range it.All() {
			n++
		}
		if n != 15 {
			b.Fatalf("expected 15 partitions, got %d", n)
		}
	}
}

// BenchmarkCoverings_FirstSolution measures time to the first cover of the
// Knuth matrix, the latency a caller sees before the iterator first yields.
func BenchmarkCoverings_FirstSolution(b *testing.B) {
	rows := [][]string{
		{"c", "e", "f"},
		{"a", "d", "g"},
		{"b", "c", "f"},
		{"a", "d"},
		{"b", "g"},
		{"d", "e", "g"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, err := cover.New(rows)
		if err != nil {
			b.Fatal(err)
		}
		if _, ok := it.Next(); !ok {
			b.Fatal("expected a solution")
		}
	}
}
