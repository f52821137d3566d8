package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchlab/search"
)

func TestLookup(t *testing.T) {
	cases := map[string]string{
		"DFS":    "DFS",
		"bfs":    "BFS",
		" gbfs ": "GBFS",
		"AS":     "A*",
		"as":     "A*",
		"a*":     "A*",
		"Cus1":   "CUS1",
		"CUS2":   "CUS2",
	}
	for in, want := range cases {
		s, err := search.Lookup(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, s.Name, in)
	}

	_, err := search.Lookup("dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownMethod)
	assert.Contains(t, err.Error(), `"dijkstra"`)
}

func TestRegistry_Strategies(t *testing.T) {
	informed := map[string]bool{"DFS": false, "BFS": false, "GBFS": true, "A*": true, "CUS1": false, "CUS2": true}
	for _, m := range search.Methods() {
		s, err := search.Lookup(m)
		require.NoError(t, err)
		assert.Equal(t, informed[m], s.Informed, m)
	}
	s, _ := search.Lookup("CUS2")
	assert.Equal(t, search.OrderWeighted, s.Ordering)
	assert.Equal(t, search.DefaultWeight, s.Weight)
	s, _ = search.Lookup("CUS1")
	assert.True(t, s.TieByHeuristic)
}

func TestMethods_ReturnsCopy(t *testing.T) {
	m := search.Methods()
	assert.Equal(t, []string{"DFS", "BFS", "GBFS", "A*", "CUS1", "CUS2"}, m)
	m[0] = "X"
	assert.Equal(t, "DFS", search.Methods()[0])
	assert.Equal(t, map[string]string{"AS": "A*"}, search.Aliases())
}

func TestRunStrategy_Custom(t *testing.T) {
	// a custom weight of 3 on the weighted ordering still reaches the goal
	s := search.Strategy{Name: "W3", Ordering: search.OrderWeighted, Informed: true, Weight: 3}
	res, err := search.RunStrategy(sampleProblem(t), s)
	require.NoError(t, err)
	assert.Equal(t, "W3", res.Method)
	assert.True(t, res.Found())
}
