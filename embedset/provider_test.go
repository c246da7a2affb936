package embedset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosuaKrause/fann/distkit"
	"github.com/JosuaKrause/fann/embedset"
)

func mustDense(t *testing.T, rows [][]float64) *embedset.Dense {
	t.Helper()
	d, err := embedset.NewDense(rows)
	require.NoError(t, err)
	return d
}

func TestNewDenseRejectsEmpty(t *testing.T) {
	_, err := embedset.NewDense(nil)
	assert.ErrorIs(t, err, embedset.ErrEmptyCorpus)
}

func TestNewDenseRejectsRaggedRows(t *testing.T) {
	_, err := embedset.NewDense([][]float64{{1, 2}, {1, 2, 3}})
	assert.ErrorIs(t, err, embedset.ErrDimensionMismatch)
}

func TestProviderAbsoluteIndexing(t *testing.T) {
	dense := mustDense(t, [][]float64{{0}, {1}, {2}, {10}, {11}})
	p := embedset.New(dense, distkit.NewL2())

	sub, err := p.Subrange(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Start())
	assert.Equal(t, 5, sub.End())

	row, err := sub.At(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, row)

	_, err = sub.At(0)
	assert.ErrorIs(t, err, embedset.ErrInvalidRange)
}

func TestSubrangeRejectsOutOfBounds(t *testing.T) {
	dense := mustDense(t, [][]float64{{0}, {1}, {2}})
	p := embedset.New(dense, distkit.NewL2())

	_, err := p.Subrange(1, 5)
	assert.True(t, errors.Is(err, embedset.ErrInvalidRange))

	_, err = p.Subrange(2, 1)
	assert.True(t, errors.Is(err, embedset.ErrInvalidRange))
}

func TestCompareAndWithPair(t *testing.T) {
	dense := mustDense(t, [][]float64{{0, 0}, {3, 4}})
	p := embedset.New(dense, distkit.NewL2())

	d, err := p.Compare(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 25.0, d.To())
}

func TestFingerprintDeterministic(t *testing.T) {
	dense := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	p1 := embedset.New(dense, distkit.NewL2())
	p2 := embedset.New(dense, distkit.NewL2())

	assert.Equal(t, p1.Fingerprint(), p2.Fingerprint())
}

func TestFingerprintDiffersOnByteChange(t *testing.T) {
	dense1 := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	dense2 := mustDense(t, [][]float64{{1, 2}, {3, 4.0000001}})

	p1 := embedset.New(dense1, distkit.NewL2())
	p2 := embedset.New(dense2, distkit.NewL2())

	assert.NotEqual(t, p1.Fingerprint(), p2.Fingerprint())
}

func TestFingerprintDiffersOnRange(t *testing.T) {
	dense := mustDense(t, [][]float64{{1}, {2}, {3}, {4}})
	root := embedset.New(dense, distkit.NewL2())

	sub1, err := root.Subrange(0, 2)
	require.NoError(t, err)
	sub2, err := root.Subrange(2, 4)
	require.NoError(t, err)

	assert.NotEqual(t, sub1.Fingerprint(), sub2.Fingerprint())
}
