package tree

import (
	"github.com/JosuaKrause/fann/distkit"
	"github.com/JosuaKrause/fann/embedset"
	"github.com/JosuaKrause/fann/obs"
	"github.com/JosuaKrause/fann/paircache"
)

// distWithCache is the build-time pair-distance helper: it always reports
// both indices to the observation sink (the core is "aware of" them whether
// or not the distance was actually recomputed), then consults cache before
// falling back to the provider's kernel, memoizing the result. Grounded on
// the original engine's EmbeddingProvider::dist_internal.
func distWithCache(provider *embedset.Provider, cache paircache.Cache, sink obs.Sink, a, b int) (distkit.Dist, error) {
	sink.DistanceEvaluated(a)
	sink.DistanceEvaluated(b)

	key := paircache.NewKey(a, b)
	if v, ok := cache.Get(key); ok {
		sink.CacheAccess(true)
		return v, nil
	}
	sink.CacheAccess(false)

	d, err := provider.Compare(a, b)
	if err != nil {
		return distkit.Dist{}, err
	}
	cache.Put(key, d)
	return d, nil
}
