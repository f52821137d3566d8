// Package heuristic provides distance estimates between two nodes of a
// core.Graph, used by the informed search strategies (GBFS, A*, CUS2) to
// rank frontier entries.
//
// Euclidean is admissible and consistent whenever every edge cost is at
// least the straight-line distance between its endpoints. The engine does
// not enforce this; on graphs with cheaper edges A* may return a
// suboptimal path. Use Admissible to check a graph up front.
package heuristic

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/searchlab/core"
)

// Func estimates the remaining cost from node from to node to.
// Implementations must return a non-negative value and propagate graph
// lookup errors unchanged (wrapped) so callers can branch with errors.Is.
type Func func(g *core.Graph, from, to core.NodeID) (float64, error)

// Euclidean returns the straight-line distance between the coordinates of
// from and to. Unknown nodes yield core.ErrNodeNotFound.
func Euclidean(g *core.Graph, from, to core.NodeID) (float64, error) {
	a, err := g.Coordinates(from)
	if err != nil {
		return 0, fmt.Errorf("heuristic: %w", err)
	}
	b, err := g.Coordinates(to)
	if err != nil {
		return 0, fmt.Errorf("heuristic: %w", err)
	}

	return planar.Distance(toOrb(a), toOrb(b)), nil
}

// Zero always returns 0. Plugged into A* it degenerates into uniform-cost
// search; still validates that both nodes exist.
func Zero(g *core.Graph, from, to core.NodeID) (float64, error) {
	if !g.HasNode(from) {
		return 0, fmt.Errorf("heuristic: %w: %d", core.ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return 0, fmt.Errorf("heuristic: %w: %d", core.ErrNodeNotFound, to)
	}

	return 0, nil
}

// Admissible reports whether every edge of g costs at least the Euclidean
// distance between its endpoints, i.e. whether Euclidean can be trusted to
// keep A* optimal on g. It returns the first offending edge when not.
func Admissible(g *core.Graph) (bool, core.Edge) {
	for _, e := range g.Edges() {
		d, err := Euclidean(g, e.From, e.To)
		if err != nil || e.Cost+1e-9 < d {
			return false, e
		}
	}

	return true, core.Edge{}
}

func toOrb(p core.Point) orb.Point {
	return orb.Point{p.X, p.Y}
}
