package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JosuaKrause/fann/obs"
	"github.com/JosuaKrause/fann/paircache"
	"github.com/JosuaKrause/fann/tree"
)

func TestRenderNilTreeIsEmpty(t *testing.T) {
	var tr *tree.Tree
	assert.Equal(t, "", tr.Render(false))
}

func TestRenderContainsEveryCentroid(t *testing.T) {
	p := mustProvider(t, clusteredRows())
	tr, err := tree.Build(p, paircache.NoCache(), obs.Noop(), tree.WithMaxNodeSize(4))
	require.NoError(t, err)

	dump := tr.Render(true)
	assert.NotEmpty(t, dump)
	lineCount := strings.Count(dump, "\n") + 1
	start, end := p.Range()
	assert.Equal(t, end-start, lineCount)
}
