package obs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JosuaKrause/fann/obs"
)

func TestNoopDropsEverything(t *testing.T) {
	s := obs.Noop()
	s.CacheAccess(true)
	s.DistanceEvaluated(1)
	s.Scan(1, true)

	c := s.ReadCounters()
	assert.Equal(t, uint64(0), c.Hits)
	assert.Equal(t, uint64(0), c.Misses)
	assert.Empty(t, c.Scanned)
	assert.Empty(t, c.Distances)
}

func TestCountingAccumulates(t *testing.T) {
	s := obs.NewCounting()
	s.CacheAccess(true)
	s.CacheAccess(true)
	s.CacheAccess(false)

	s.DistanceEvaluated(5)
	s.DistanceEvaluated(2)
	s.DistanceEvaluated(5) // duplicate, must not double count

	s.Scan(7, true)
	s.Scan(3, false)

	c := s.ReadCounters()
	assert.Equal(t, uint64(2), c.Hits)
	assert.Equal(t, uint64(1), c.Misses)
	assert.Equal(t, []int{2, 5}, c.Distances)
	assert.Equal(t, []int{3, 7}, c.Scanned)
	assert.InDelta(t, 2.0/3.0, c.CacheHitRate(), 1e-12)
}

func TestCountingClear(t *testing.T) {
	s := obs.NewCounting()
	s.CacheAccess(true)
	s.DistanceEvaluated(1)
	s.Scan(1, true)

	s.Clear()

	c := s.ReadCounters()
	assert.Equal(t, uint64(0), c.Hits+c.Misses)
	assert.Empty(t, c.Scanned)
	assert.Empty(t, c.Distances)
}

func TestCacheHitRateNoAccesses(t *testing.T) {
	var c obs.Counters
	assert.Equal(t, 0.0, c.CacheHitRate())
}
