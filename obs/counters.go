package obs

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counters is a snapshot of accumulated observations, returned by
// Sink.ReadCounters.
type Counters struct {
	Hits, Misses uint64
	Scanned      []int // distinct scanned indices, ascending
	Distances    []int // distinct distance-evaluated indices, ascending
}

// CacheHitRate returns Hits / (Hits + Misses), or 0 if no accesses were
// recorded. Supplemented from the original engine's Info::cache_hit_rate.
func (c Counters) CacheHitRate() float64 {
	total := c.Hits + c.Misses
	if total == 0 {
		return 0
	}
	return float64(c.Hits) / float64(total)
}

// Counting is the reference counting Sink: atomic hit/miss counters plus
// mutex-guarded sets for scanned/distance-evaluated indices, mirroring the
// teacher's per-concern lock separation (core.Graph's muVert vs. muEdgeAdj)
// rather than one coarse lock over everything.
type Counting struct {
	hits, misses uint64 // atomic

	mu        sync.Mutex
	scanned   map[int]bool // indices visited during search; first visits kept in scanOrder
	scanOrder []int
	distances map[int]bool
	distOrder []int
}

// NewCounting constructs a fresh Counting sink with all counters at zero.
func NewCounting() *Counting {
	return &Counting{
		scanned:   make(map[int]bool),
		distances: make(map[int]bool),
	}
}

// CacheAccess records one pair-cache hit or miss.
func (c *Counting) CacheAccess(hit bool) {
	if hit {
		atomic.AddUint64(&c.hits, 1)
	} else {
		atomic.AddUint64(&c.misses, 1)
	}
}

// DistanceEvaluated records one kernel call against index.
func (c *Counting) DistanceEvaluated(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.distances[index] {
		c.distances[index] = true
		c.distOrder = append(c.distOrder, index)
	}
}

// Scan records one node visit during search with which branch was taken.
func (c *Counting) Scan(index int, isOuter bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.scanned[index] {
		c.scanned[index] = true
		c.scanOrder = append(c.scanOrder, index)
	}
	_ = isOuter // branch taken is not distinguished in the aggregate counters
}

// ReadCounters returns the accumulated counters, with the scanned and
// distance-evaluated index sets sorted ascending for deterministic
// assertions.
func (c *Counting) ReadCounters() Counters {
	c.mu.Lock()
	scanned := append([]int(nil), c.scanOrder...)
	distances := append([]int(nil), c.distOrder...)
	c.mu.Unlock()

	sort.Ints(scanned)
	sort.Ints(distances)

	return Counters{
		Hits:      atomic.LoadUint64(&c.hits),
		Misses:    atomic.LoadUint64(&c.misses),
		Scanned:   scanned,
		Distances: distances,
	}
}

// Clear resets every counter to zero, matching the original engine's
// Info::clear.
func (c *Counting) Clear() {
	atomic.StoreUint64(&c.hits, 0)
	atomic.StoreUint64(&c.misses, 0)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.scanned = make(map[int]bool)
	c.scanOrder = nil
	c.distances = make(map[int]bool)
	c.distOrder = nil
}
