package obs

// Sink is the observation capability the tree and forest packages report
// build and search activity to. The core never calls a Sink from more than
// one goroutine within a single query, so implementations only need to
// tolerate concurrent calls if they themselves choose to be shared across
// queries.
type Sink interface {
	// CacheAccess records one pair-cache consultation during build.
	CacheAccess(hit bool)

	// DistanceEvaluated records one kernel call against the given corpus
	// index.
	DistanceEvaluated(index int)

	// Scan records one node visited during search, and which branch
	// (outer/inner) was taken.
	Scan(index int, isOuter bool)

	// ReadCounters returns the accumulated hit/miss counts and the set of
	// distinct scanned and distance-evaluated indices, for test assertions
	// and debugging.
	ReadCounters() Counters
}

// noop is the null-object Sink: every call is dropped. Grounded on the
// original engine's NoInfo / no_info().
type noop struct{}

// Noop returns a Sink that discards every observation.
func Noop() Sink {
	return noop{}
}

func (noop) CacheAccess(bool)       {}
func (noop) DistanceEvaluated(int)  {}
func (noop) Scan(int, bool)         {}
func (noop) ReadCounters() Counters { return Counters{} }
