// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - Neighbors() returns arcs sorted by To asc.
//   - AdjacencyList() keys are implicit; callers iterate Nodes() for order.

package core

import "fmt"

// Neighbors returns the outgoing arcs of node id, sorted by ascending
// destination ID. This ordering decides tie-breaks in every search strategy
// that does not otherwise distinguish equal-priority entries.
//
// The returned slice is a copy; callers may keep or modify it.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(d) for the copy.
func (g *Graph) Neighbors(id NodeID) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	arcs := g.adjacency[id]
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out, nil
}

// NeighborIDs returns the destination IDs of id's outgoing arcs, ascending.
func (g *Graph) NeighborIDs(id NodeID) ([]NodeID, error) {
	arcs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	ids := make([]NodeID, len(arcs))
	for i, a := range arcs {
		ids[i] = a.To
	}

	return ids, nil
}

// AdjacencyList returns a snapshot mapping every node to its sorted
// outgoing neighbor IDs. Nodes without outgoing edges map to an empty slice.
func (g *Graph) AdjacencyList() map[NodeID][]NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[NodeID][]NodeID, len(g.nodes))
	for id := range g.nodes {
		arcs := g.adjacency[id]
		ids := make([]NodeID, len(arcs))
		for i, a := range arcs {
			ids[i] = a.To
		}
		out[id] = ids
	}

	return out
}
