package colex_test

import (
	"iter"
	"slices"

	"github.com/moshejw/colex"
)

// ints returns a finite source of the values 0..n-1, so that emitted
// values double as buffer positions in assertions.
func ints(n int) iter.Seq[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}

	return slices.Values(items)
}

// naturals returns an unbounded source 0, 1, 2, ...
func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// counting wraps seq, incrementing *pulls once per item handed out.
func counting[T any](seq iter.Seq[T], pulls *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			*pulls++
			if !yield(v) {
				return
			}
		}
	}
}

// collect drains a generator into a slice of tuples.
func collect[T any](g *colex.Generator[T]) [][]T {
	return slices.Collect(g.Seq())
}

// take drains at most k tuples from a generator, then stops pulling.
func take[T any](g *colex.Generator[T], k int) [][]T {
	var out [][]T
	for t := range g.Seq() {
		out = append(out, t)
		if len(out) == k {
			break
		}
	}

	return out
}

// binomial computes C(n, k) exactly.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1
	for i := 1; i <= k; i++ {
		c = c * (n - k + i) / i
	}

	return c
}

// colexLess reports whether a precedes b in colexicographic order:
// positions are compared from last to first, the highest differing
// position decides.
func colexLess(a, b []int) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
