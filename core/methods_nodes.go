// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/Coordinates/Nodes/NodeCount.
// Determinism:
//   - Nodes() returns IDs sorted ascending.
// Concurrency:
//   - AddNode holds the write lock; queries hold the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddNode inserts a node with the given ID and coordinates.
//
// Errors:
//   - ErrInvalidNodeID: if id <= 0.
//   - ErrBadCoordinate: if x or y is NaN or infinite.
//   - ErrDuplicateNode: if the node already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID, x, y float64) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidNodeID, id)
	}
	if !finite(x) || !finite(y) {
		return fmt.Errorf("%w: node %d at (%v, %v)", ErrBadCoordinate, id, x, y)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = &Node{ID: id, Point: Point{X: x, Y: y}}

	return nil
}

// HasNode reports whether the node ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Coordinates returns the position of node id.
// Returns ErrNodeNotFound if the node is unknown.
// Complexity: O(1).
func (g *Graph) Coordinates(id NodeID) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Point{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n.Point, nil
}

// Node returns a copy of the node record for id.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return *n, nil
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
