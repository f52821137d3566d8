package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/search"
)

// tree: 2 -> {1, 3}, 3 -> {5}
func sampleTrace() *search.Trace {
	return &search.Trace{Entries: []search.Entry{
		{Node: 2, Parent: core.NoNode, ParentIndex: -1},
		{Node: 3, Parent: 2, ParentIndex: 0, Depth: 1},
		{Node: 1, Parent: 2, ParentIndex: 0, Depth: 1},
		{Node: 5, Parent: 3, ParentIndex: 1, Depth: 2},
	}}
}

func TestTrace_PathTo(t *testing.T) {
	tr := sampleTrace()
	path, err := tr.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 3, 5}, path)

	path, err = tr.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2}, path)

	_, err = tr.PathTo(4)
	assert.ErrorIs(t, err, search.ErrIndexOutOfRange)
	_, err = tr.PathTo(-1)
	assert.ErrorIs(t, err, search.ErrIndexOutOfRange)
}

func TestTrace_Queries(t *testing.T) {
	tr := sampleTrace()
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, []core.NodeID{2, 3, 1, 5}, tr.Nodes())
	assert.Equal(t, []search.Pair{{2, 0}, {3, 2}, {1, 2}, {5, 3}}, tr.Pairs())
	assert.Equal(t, 2, tr.IndexOf(1))
	assert.Equal(t, -1, tr.IndexOf(6))
	assert.Equal(t, []int{1, 2}, tr.Children(0))
	assert.Equal(t, []int{3}, tr.Children(1))
	assert.Empty(t, tr.Children(3))

	e, err := tr.At(1)
	require.NoError(t, err)
	assert.Equal(t, core.NodeID(3), e.Node)
}

func TestTrace_Nil(t *testing.T) {
	var tr *search.Trace
	assert.Equal(t, 0, tr.Len())
	assert.Empty(t, tr.Nodes())
	_, err := tr.At(0)
	assert.ErrorIs(t, err, search.ErrIndexOutOfRange)
}
