package colex

import "slices"

// The generic incremental engines below serve any tuple length. State per
// run: idx (positions of the current tuple), buf (every item pulled so
// far), out (the current tuple's values, re-read only where idx changed)
// and the cursor j — the single position advanced between emissions. Index
// bookkeeping is O(1) amortized per emitted tuple: the resets in the inner
// loop are paid for by the emissions that preceded them.

// combGeneric emits every strictly-increasing r-index tuple over the
// source, in colexicographic order: after the initial (0..r-1) tuple, each
// further item at position n-1 yields the block of all tuples ending
// there, one position change at a time.
func combGeneric[T any](next func() (T, bool), r int, yield func([]T) bool) {
	switch r {
	case 0:
		yield([]T{})
		return
	case 1:
		for {
			x, ok := next()
			if !ok || !yield([]T{x}) {
				return
			}
		}
	}

	var (
		idx = make([]int, r)
		buf = make([]T, 0, r)
		out = make([]T, r)
		j   int
	)
	// Fill with the first r items; a shorter source produces nothing.
	for {
		x, ok := next()
		if !ok {
			return
		}
		idx[j] = j
		buf = append(buf, x)
		out[j] = x
		if j == r-1 {
			break
		}
		j++
	}
	if !yield(slices.Clone(out)) {
		return
	}

	for {
		x, ok := next()
		if !ok {
			return
		}
		idx[j]++ // j == r-1 on every pass through here
		buf = append(buf, x)
		out[j] = x
		if !yield(slices.Clone(out)) {
			return
		}
		j--
		for {
			idx[j]++
			out[j] = buf[idx[j]]
			if !yield(slices.Clone(out)) {
				return
			}
			if j > 0 {
				j--
				continue
			}
			// Block for the current final index done up to here: slide j
			// back up across saturated positions, resetting each.
			for j < r-1 && idx[j]+1 == idx[j+1] {
				idx[j] = j
				out[j] = buf[j]
				j++
			}
			if j == r-1 {
				break
			}
		}
	}
}

// replGeneric is the with-repetition counterpart: non-decreasing index
// tuples, blocks starting from the very first item (which yields the
// all-zero tuple), positions resetting to 0 rather than to their floor.
func replGeneric[T any](next func() (T, bool), r int, yield func([]T) bool) {
	switch r {
	case 0:
		yield([]T{})
		return
	case 1:
		for {
			x, ok := next()
			if !ok || !yield([]T{x}) {
				return
			}
		}
	}

	first, ok := next()
	if !ok {
		return
	}
	var (
		idx = make([]int, r)
		buf = []T{first}
		out = make([]T, r)
	)
	for i := range out {
		out[i] = first
	}
	if !yield(slices.Clone(out)) {
		return
	}

	j := r - 1
	for {
		x, ok := next()
		if !ok {
			return
		}
		idx[j]++ // j == r-1 on every pass through here
		buf = append(buf, x)
		out[j] = x
		if !yield(slices.Clone(out)) {
			return
		}
		j--
		for {
			idx[j]++
			out[j] = buf[idx[j]]
			if !yield(slices.Clone(out)) {
				return
			}
			if j > 0 {
				j--
				continue
			}
			for j < r-1 && idx[j] == idx[j+1] {
				idx[j] = 0
				out[j] = first
				j++
			}
			if j == r-1 {
				break
			}
		}
	}
}
