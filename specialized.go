package colex

// A specialized engine unrolls the tuple positions of one fixed length r
// into a chain of loop closures, one per position, assembled once at build
// time and shared read-only by every generator of that length. The caller
// has already fixed the final position (idx[r-1]) to the newest buffer
// index; the chain enumerates, in colexicographic order, every way to fill
// the remaining positions.

// blockFn emits one block of index tuples. set(p) notifies the driver that
// idx[p] changed so it can refresh the output value at p; emit yields the
// completed tuple. Both the chain and emit report false when the consumer
// stopped early.
type blockFn func(idx []int, set func(int), emit func() bool) bool

// singleBlock serves r == 1 for both generator kinds: the newest item
// alone, already placed at position 0 by the driver.
func singleBlock(_ []int, _ func(int), emit func() bool) bool {
	return emit()
}

// combBase is position 0 of a no-repetition chain: i0 ∈ [0, idx[1]).
func combBase(idx []int, set func(int), emit func() bool) bool {
	for i := 0; i < idx[1]; i++ {
		idx[0] = i
		set(0)
		if !emit() {
			return false
		}
	}
	return true
}

// combLevel wraps inner with the loop for position m: i_m ∈ [m, idx[m+1]).
// The lower bound m leaves room for the m positions below.
func combLevel(m int, inner blockFn) blockFn {
	return func(idx []int, set func(int), emit func() bool) bool {
		for i := m; i < idx[m+1]; i++ {
			idx[m] = i
			set(m)
			if !inner(idx, set, emit) {
				return false
			}
		}
		return true
	}
}

// replBase is position 0 of a with-repetition chain: i0 ∈ [0, idx[1]].
func replBase(idx []int, set func(int), emit func() bool) bool {
	for i := 0; i <= idx[1]; i++ {
		idx[0] = i
		set(0)
		if !emit() {
			return false
		}
	}
	return true
}

// replLevel wraps inner with the loop for position m: i_m ∈ [0, idx[m+1]].
func replLevel(m int, inner blockFn) blockFn {
	return func(idx []int, set func(int), emit func() bool) bool {
		for i := 0; i <= idx[m+1]; i++ {
			idx[m] = i
			set(m)
			if !inner(idx, set, emit) {
				return false
			}
		}
		return true
	}
}

// buildComb assembles the no-repetition engine for 1 ≤ r ≤ MaxSpecialized.
func buildComb(r int) blockFn {
	if r == 1 {
		return singleBlock
	}
	fn := blockFn(combBase)
	for m := 1; m <= r-2; m++ {
		fn = combLevel(m, fn)
	}

	return fn
}

// buildRepl assembles the with-repetition engine for 1 ≤ r ≤ MaxSpecialized.
func buildRepl(r int) blockFn {
	if r == 1 {
		return singleBlock
	}
	fn := blockFn(replBase)
	for m := 1; m <= r-2; m++ {
		fn = replLevel(m, fn)
	}

	return fn
}
