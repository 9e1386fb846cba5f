// Package colex generates fixed-length combinations in colexicographic
// order from a single-pass, possibly unbounded source sequence.
//
// 🚀 What is colex?
//
//	A streaming alternative to the usual "combinations of a slice" helpers:
//	the source is consumed exactly once, output begins as soon as enough
//	items have arrived, and emitted tuples are never revisited — so the
//	source may be infinite.
//	  • Combinations                — no repetition, strictly increasing positions
//	  • CombinationsWithReplacement — repetition allowed, non-decreasing positions
//
// Colexicographic order compares tuples from the last position backwards:
// every combination ending at a given source position is emitted, as a
// block, before any combination ending at a later position. That is what
// makes streaming possible — a new item only ever adds combinations.
//
// ✨ Key features:
//   - lazy iter.Seq surface: composes with range loops and iterator adaptors
//   - works on unbounded sources; suspension only at source-pull points
//   - O(1) amortized index bookkeeping per emitted tuple
//   - unrolled engines for tuple lengths up to MaxSpecialized, built once
//     per length and shared process-wide; a generic incremental engine above
//
// ⚙️ Usage:
//
//	import "github.com/moshejw/colex"
//
//	gen, err := colex.Combinations(slices.Values([]string{"A", "B", "C", "D"}), 2)
//	if err != nil {
//	  // ErrNonIntegerLength or ErrNegativeLength
//	}
//	for pair := range gen.Seq() {
//	  fmt.Println(pair) // [A B], [A C], [B C], [A D], [B D], [C D]
//	}
//
// Element identity is the source position, not value equality: two equal
// values at different positions are distinct. A Generator owns its source;
// it is single-use and must not share the source with any other consumer.
//
// Performance:
//
//   - Time:   O(1) amortized bookkeeping per tuple, plus the O(r) copy of
//     each emitted tuple
//   - Memory: O(r) indices + one buffered copy of every item seen so far
package colex
