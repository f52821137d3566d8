// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Cost/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc.
//   - Duplicate (From, To) pairs follow the graph's EdgePolicy.
// Concurrency:
//   - AddEdge holds the write lock; queries hold the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge creates the directed edge from→to with the given cost.
//
// Steps:
//  1. Validate cost (finite, non-negative) and loop policy.
//  2. Lock, check both endpoints exist.
//  3. Locate the insertion point in from's sorted adjacency.
//  4. Apply the duplicate-edge policy if to is already present.
//  5. Insert the arc, keeping adjacency sorted by To.
//
// Errors:
//   - ErrBadCost, ErrNegativeCost: invalid cost.
//   - ErrLoopNotAllowed: from == to while loops are disabled.
//   - ErrNodeNotFound: either endpoint is unknown.
//   - ErrDuplicateEdge: an edge from→to already exists (RejectDuplicates policy).
//
// Complexity: O(d) where d is the out-degree of from (slice insertion).
func (g *Graph) AddEdge(from, to NodeID, cost float64) error {
	// 1) Input validation
	if !finite(cost) {
		return fmt.Errorf("%w: %d→%d cost=%v", ErrBadCost, from, to, cost)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %d→%d cost=%v", ErrNegativeCost, from, to, cost)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %d→%d", ErrLoopNotAllowed, from, to)
	}

	// 2) Endpoints must already exist; coordinates cannot be invented here.
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: edge source %d", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: edge target %d", ErrNodeNotFound, to)
	}

	// 3) Binary search for the insertion point
	arcs := g.adjacency[from]
	i := sort.Search(len(arcs), func(k int) bool { return arcs[k].To >= to })

	// 4) Duplicate handling
	if i < len(arcs) && arcs[i].To == to {
		if g.edgePolicy == FirstEdgeWins {
			return nil
		}

		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, from, to)
	}

	// 5) Insert in place
	arcs = append(arcs, Arc{})
	copy(arcs[i+1:], arcs[i:])
	arcs[i] = Arc{To: to, Cost: cost}
	g.adjacency[from] = arcs
	g.edgeCount++

	return nil
}

// HasEdge reports whether a directed edge from→to exists.
// Complexity: O(log d).
func (g *Graph) HasEdge(from, to NodeID) bool {
	_, err := g.Cost(from, to)

	return err == nil
}

// Cost returns the cost of the edge from→to.
// Returns ErrEdgeNotFound if there is no such edge.
// Complexity: O(log d).
func (g *Graph) Cost(from, to NodeID) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs := g.adjacency[from]
	i := sort.Search(len(arcs), func(k int) bool { return arcs[k].To >= to })
	if i < len(arcs) && arcs[i].To == to {
		return arcs[i].Cost, nil
	}

	return 0, fmt.Errorf("%w: %d→%d", ErrEdgeNotFound, from, to)
}

// Edges returns every edge sorted by (From, To) ascending.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	froms := make([]NodeID, 0, len(g.adjacency))
	for from := range g.adjacency {
		froms = append(froms, from)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })

	out := make([]Edge, 0, g.edgeCount)
	for _, from := range froms {
		for _, a := range g.adjacency[from] {
			out = append(out, Edge{From: from, To: a.To, Cost: a.Cost})
		}
	}

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
