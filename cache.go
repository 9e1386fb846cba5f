package colex

import "sync"

// Process-wide specialization caches, one per generator kind, keyed by
// tuple length. An engine depends only on its length, never on any
// instance's data, so entries are write-once and shared read-only across
// all generators for the life of the process; nothing is ever evicted.
var (
	combEngines sync.Map // int → blockFn
	replEngines sync.Map // int → blockFn
)

// engineFor returns the engine for (kind, r), building and publishing it
// on first request. Two goroutines racing on the same length may both
// build; LoadOrStore publishes exactly one complete engine and hands it to
// both.
func engineFor(r int, repl bool) blockFn {
	cache, build := &combEngines, buildComb
	if repl {
		cache, build = &replEngines, buildRepl
	}
	if e, ok := cache.Load(r); ok {
		return e.(blockFn)
	}
	e, _ := cache.LoadOrStore(r, build(r))

	return e.(blockFn)
}
