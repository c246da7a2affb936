package tree_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosuaKrause/fann/distkit"
	"github.com/JosuaKrause/fann/embedset"
	"github.com/JosuaKrause/fann/internal/brute"
	"github.com/JosuaKrause/fann/obs"
	"github.com/JosuaKrause/fann/paircache"
	"github.com/JosuaKrause/fann/tree"
)

func TestSearchRejectsNegativeK(t *testing.T) {
	p := mustProvider(t, [][]float64{{0}, {1}})
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop())
	require.NoError(t, err)

	_, err = tree.Search(tr, p, []float64{0}, -1, obs.Noop())
	assert.ErrorIs(t, err, tree.ErrInvalidParameter)
}

func TestSearchZeroKReturnsEmpty(t *testing.T) {
	p := mustProvider(t, [][]float64{{0}, {1}})
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop())
	require.NoError(t, err)

	res, err := tree.Search(tr, p, []float64{0}, 0, obs.Noop())
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestSearchKGreaterThanNReturnsAll(t *testing.T) {
	rows := clusteredRows()
	p := mustProvider(t, rows)
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop())
	require.NoError(t, err)

	res, err := tree.Search(tr, p, []float64{0, 0}, len(rows)+50, obs.Noop())
	require.NoError(t, err)
	assert.Len(t, res, len(rows))
}

func TestSearchSingleElementCorpus(t *testing.T) {
	p := mustProvider(t, [][]float64{{3, 4}})
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop())
	require.NoError(t, err)

	res, err := tree.Search(tr, p, []float64{0, 0}, 1, obs.Noop())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 0, res[0].Index)
	assert.InDelta(t, 5.0, res[0].Dist, 1e-9)
}

func TestSearchMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rows := make([][]float64, 0, 200)
	for i := 0; i < 200; i++ {
		rows = append(rows, []float64{rng.Float64() * 100, rng.Float64() * 100, rng.Float64() * 100})
	}
	p := mustProvider(t, rows)
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop(), tree.WithMaxNodeSize(8))
	require.NoError(t, err)

	query := []float64{50, 50, 50}
	const k = 10

	got, err := tree.Search(tr, p, query, k, obs.Noop())
	require.NoError(t, err)
	want, err := brute.Search(p, query, k)
	require.NoError(t, err)

	require.Len(t, got, k)
	require.Len(t, want, k)

	gotSet := make(map[int]float64, k)
	for _, r := range got {
		gotSet[r.Index] = r.Dist
	}
	for _, r := range want {
		wd, ok := gotSet[r.Index]
		require.True(t, ok, "index %d from brute force missing from tree search result", r.Index)
		assert.InDelta(t, r.Dist, wd, 1e-6)
	}
}

func TestSearchResultsSortedAscending(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rows := make([][]float64, 0, 80)
	for i := 0; i < 80; i++ {
		rows = append(rows, []float64{rng.Float64() * 10, rng.Float64() * 10})
	}
	p := mustProvider(t, rows)
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop(), tree.WithMaxNodeSize(4))
	require.NoError(t, err)

	res, err := tree.Search(tr, p, []float64{5, 5}, 15, obs.Noop())
	require.NoError(t, err)

	for i := 1; i < len(res); i++ {
		assert.LessOrEqual(t, res[i-1].Dist, res[i].Dist)
	}
}

func TestSearchPruningScansFewerThanAllNodes(t *testing.T) {
	// Three well-separated clusters: a search near one cluster should
	// prune the other two entirely.
	rows := [][]float64{}
	clusters := [][2]float64{{0, 0}, {1000, 0}, {0, 1000}}
	for _, c := range clusters {
		for i := 0; i < 3; i++ {
			rows = append(rows, []float64{c[0] + float64(i), c[1] + float64(i)})
		}
	}
	p := mustProvider(t, rows)
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop(), tree.WithMaxNodeSize(3))
	require.NoError(t, err)

	sink := obs.NewCounting()
	_, err = tree.Search(tr, p, []float64{0, 0}, 1, sink)
	require.NoError(t, err)

	counters := sink.ReadCounters()
	assert.Less(t, len(counters.Scanned), len(rows),
		"branch-and-bound should prune at least one distant cluster's nodes")
}

func TestSearchDistinctDistancesMatchEuclidean(t *testing.T) {
	rows := [][]float64{{0, 0}, {3, 4}, {6, 8}, {1, 1}}
	p := mustProvider(t, rows)
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop())
	require.NoError(t, err)

	res, err := tree.Search(tr, p, []float64{0, 0}, 4, obs.Noop())
	require.NoError(t, err)
	require.Len(t, res, 4)

	byIndex := map[int]float64{}
	for _, r := range res {
		byIndex[r.Index] = r.Dist
	}
	assert.InDelta(t, 0.0, byIndex[0], 1e-9)
	assert.InDelta(t, 5.0, byIndex[1], 1e-9)
	assert.InDelta(t, 10.0, byIndex[2], 1e-9)
	assert.InDelta(t, math.Sqrt(2), byIndex[3], 1e-9)
}

func TestSearchThreePointCorpusReturnsK(t *testing.T) {
	dense, err := embedset.NewDense([][]float64{{0}, {1}, {2}})
	require.NoError(t, err)
	p := embedset.New(dense, distkit.NewL2())
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop())
	require.NoError(t, err)

	res, err := tree.Search(tr, p, []float64{1}, 2, obs.Noop())
	require.NoError(t, err)
	assert.Len(t, res, 2)
}
