package colex

import (
	"fmt"
	"iter"
	"slices"
	"sync/atomic"
)

// Generator is a handle on one generation run: a lazy, non-restartable
// sequence of length-r tuples drawn from a single-pass source, emitted in
// colexicographic order of their source positions.
//
// The Generator exclusively owns its source. It is single-use: the first
// range over Seq consumes it, and any later range observes an empty,
// terminal sequence without touching the source again. Sharing one source
// between two generators has no defined combinatorial meaning.
type Generator[T any] struct {
	source  iter.Seq[T]
	r       int
	repl    bool
	started atomic.Bool
}

// Combinations returns a generator of all length-r subsequences of source,
// without repetition, in colexicographic order of source positions.
//
// The source may be unbounded: tuples are emitted incrementally, and every
// combination ending at a given source position appears before any
// combination ending at a later one. source is consumed exactly once, and
// only as far as the caller iterates.
//
// length accepts any integer-kind value. A non-integer value fails with
// ErrNonIntegerLength, a negative one with ErrNegativeLength; both are
// reported before the source is pulled.
func Combinations[T any](source iter.Seq[T], length any) (*Generator[T], error) {
	return newGenerator(source, length, false)
}

// CombinationsWithReplacement returns a generator of all length-r
// subsequences of source, with repetition allowed (non-decreasing source
// positions), in colexicographic order. Length handling, laziness and
// source ownership are as for Combinations.
func CombinationsWithReplacement[T any](source iter.Seq[T], length any) (*Generator[T], error) {
	return newGenerator(source, length, true)
}

func newGenerator[T any](source iter.Seq[T], length any, repl bool) (*Generator[T], error) {
	r, err := indexify(length)
	if err != nil {
		return nil, err
	}
	if r < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, r)
	}

	return &Generator[T]{source: source, r: r, repl: repl}, nil
}

// Length reports the tuple length the generator was constructed with.
func (g *Generator[T]) Length() int { return g.r }

// Seq returns the tuple sequence. Each emitted tuple is a fresh slice the
// caller may retain. Breaking out of the range stops source consumption;
// no partial tuple is ever emitted.
func (g *Generator[T]) Seq() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if !g.started.CompareAndSwap(false, true) {
			return
		}
		if g.r == 0 {
			// One empty tuple, whatever the source holds. No pull.
			yield([]T{})
			return
		}
		next, stop := iter.Pull(g.source)
		defer stop()
		switch {
		case g.r <= MaxSpecialized:
			g.run(next, engineFor(g.r, g.repl), yield)
		case g.repl:
			replGeneric(next, g.r, yield)
		default:
			combGeneric(next, g.r, yield)
		}
	}
}

// run drives a specialized engine: each source item extends the buffer to
// some length n and triggers the block of all tuples whose final index is
// n-1. Without repetition the first block waits for a full buffer of r
// items; with repetition blocks start at the very first item.
func (g *Generator[T]) run(next func() (T, bool), block blockFn, yield func([]T) bool) {
	var (
		buf []T
		idx = make([]int, g.r)
		out = make([]T, g.r)
	)
	set := func(p int) { out[p] = buf[idx[p]] }
	emit := func() bool { return yield(slices.Clone(out)) }
	for n := 1; ; n++ {
		x, ok := next()
		if !ok {
			return
		}
		buf = append(buf, x)
		if !g.repl && n < g.r {
			continue
		}
		idx[g.r-1] = n - 1
		out[g.r-1] = x
		if !block(idx, set, emit) {
			return
		}
	}
}
