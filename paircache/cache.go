package paircache

import "github.com/JosuaKrause/fann/distkit"

// Cache is the advisory pair-distance memoization contract consulted during
// tree build. Get returns the memoized value if present; Put stores a value
// under whatever eviction policy the implementation chooses. A Cache that
// always misses is valid — correctness of the build never depends on a hit,
// only its cost does.
type Cache interface {
	Get(key Key) (distkit.Dist, bool)
	Put(key Key, value distkit.Dist)
}

// noCache is the null-object Cache: every Get misses, every Put is a no-op.
// Grounded on the original engine's NoCache / no_cache().
type noCache struct{}

// NoCache returns a Cache that never memoizes anything.
func NoCache() Cache {
	return noCache{}
}

func (noCache) Get(Key) (distkit.Dist, bool) { return distkit.Dist{}, false }
func (noCache) Put(Key, distkit.Dist)        {}
