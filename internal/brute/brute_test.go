package brute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosuaKrause/fann/distkit"
	"github.com/JosuaKrause/fann/embedset"
	"github.com/JosuaKrause/fann/internal/brute"
)

func TestSearchReturnsClosestSortedAscending(t *testing.T) {
	dense, err := embedset.NewDense([][]float64{{0, 0}, {5, 0}, {1, 0}, {10, 0}})
	require.NoError(t, err)
	p := embedset.New(dense, distkit.NewL2())

	res, err := brute.Search(p, []float64{0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, []int{0, 2, 1}, []int{res[0].Index, res[1].Index, res[2].Index})
	assert.InDelta(t, 0.0, res[0].Dist, 1e-9)
	assert.InDelta(t, 1.0, res[1].Dist, 1e-9)
	assert.InDelta(t, 5.0, res[2].Dist, 1e-9)
}

func TestSearchKGreaterThanCorpusReturnsAll(t *testing.T) {
	dense, err := embedset.NewDense([][]float64{{0}, {1}})
	require.NoError(t, err)
	p := embedset.New(dense, distkit.NewL2())

	res, err := brute.Search(p, []float64{0}, 10)
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestSearchOverSubrangeOnlyScansThatRange(t *testing.T) {
	dense, err := embedset.NewDense([][]float64{{0}, {1}, {2}, {3}})
	require.NoError(t, err)
	root := embedset.New(dense, distkit.NewL2())
	sub, err := root.Subrange(2, 4)
	require.NoError(t, err)

	res, err := brute.Search(sub, []float64{0}, 2)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, 2, res[0].Index)
	assert.Equal(t, 3, res[1].Index)
}
