// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, nodes and edges.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.allowLoops = g.allowLoops
	clone.edgePolicy = g.edgePolicy
	clone.edgeCount = g.edgeCount

	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
	}
	for from, arcs := range g.adjacency {
		cp := make([]Arc, len(arcs))
		copy(cp, arcs)
		clone.adjacency[from] = cp
	}

	return clone
}

// Equal reports whether g and other hold the same nodes, coordinates and edges.
func (g *Graph) Equal(other *Graph) bool {
	if g == other {
		return true
	}
	if other == nil {
		return false
	}
	if g.NodeCount() != other.NodeCount() || g.EdgeCount() != other.EdgeCount() {
		return false
	}
	for _, id := range g.Nodes() {
		a, _ := g.Node(id)
		b, err := other.Node(id)
		if err != nil || a != b {
			return false
		}
	}
	ea, eb := g.Edges(), other.Edges()
	for i := range ea {
		if ea[i] != eb[i] {
			return false
		}
	}

	return true
}
