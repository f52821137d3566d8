package heuristic_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/heuristic"
)

func newPair(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, 4, 1))
	require.NoError(t, g.AddNode(5, 5, 6))

	return g
}

func TestEuclidean(t *testing.T) {
	g := newPair(t)

	d, err := heuristic.Euclidean(g, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(26), d, 1e-12)

	back, err := heuristic.Euclidean(g, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, d, back, "distance is symmetric")

	self, err := heuristic.Euclidean(g, 1, 1)
	require.NoError(t, err)
	assert.Zero(t, self)
}

func TestEuclidean_UnknownNode(t *testing.T) {
	g := newPair(t)

	_, err := heuristic.Euclidean(g, 1, 9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = heuristic.Euclidean(g, 9, 1)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestZero(t *testing.T) {
	g := newPair(t)

	d, err := heuristic.Zero(g, 1, 5)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = heuristic.Zero(g, 1, 9)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAdmissible(t *testing.T) {
	g := newPair(t)
	require.NoError(t, g.AddEdge(1, 5, 6))

	ok, _ := heuristic.Admissible(g)
	assert.True(t, ok)

	require.NoError(t, g.AddEdge(5, 1, 2))
	ok, bad := heuristic.Admissible(g)
	assert.False(t, ok)
	assert.Equal(t, core.Edge{From: 5, To: 1, Cost: 2}, bad)
}
