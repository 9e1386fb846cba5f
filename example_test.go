package colex_test

import (
	"fmt"
	"iter"
	"slices"

	"github.com/moshejw/colex"
)

// ExampleCombinations enumerates all pairs of a four-item source. Note the
// colexicographic order: every pair ending in C appears before any pair
// ending in D.
func ExampleCombinations() {
	gen, err := colex.Combinations(slices.Values([]string{"A", "B", "C", "D"}), 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for pair := range gen.Seq() {
		fmt.Println(pair)
	}
	// Output:
	// [A B]
	// [A C]
	// [B C]
	// [A D]
	// [B D]
	// [C D]
}

// ExampleCombinationsWithReplacement enumerates all pairs of a three-item
// source with repetition allowed.
func ExampleCombinationsWithReplacement() {
	gen, err := colex.CombinationsWithReplacement(slices.Values([]string{"A", "B", "C"}), 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for pair := range gen.Seq() {
		fmt.Println(pair)
	}
	// Output:
	// [A A]
	// [A B]
	// [B B]
	// [A C]
	// [B C]
	// [C C]
}

// ExampleCombinations_unbounded draws the first few triples from a source
// that never ends. Colexicographic order is what makes this possible: new
// items only ever add combinations after everything already emitted.
func ExampleCombinations_unbounded() {
	naturals := iter.Seq[int](func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})

	gen, err := colex.Combinations(naturals, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	count := 0
	for triple := range gen.Seq() {
		fmt.Println(triple)
		if count++; count == 5 {
			break
		}
	}
	// Output:
	// [0 1 2]
	// [0 1 3]
	// [0 2 3]
	// [1 2 3]
	// [0 1 4]
}
