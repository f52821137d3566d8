package problem

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/search"
)

// Sentinel errors for problem loading.
var (
	// ErrSyntax indicates a malformed line; the wrapped message names it.
	ErrSyntax = errors.New("problem: syntax error")

	// ErrUnknownNode indicates an edge, origin or destination that refers to
	// a node the file never declares.
	ErrUnknownNode = errors.New("problem: reference to undeclared node")

	// ErrMissingSection indicates the file has no origin or no destinations.
	ErrMissingSection = errors.New("problem: missing section")

	// ErrGoalNotDestination indicates a requested goal outside Destinations.
	ErrGoalNotDestination = errors.New("problem: goal is not a destination")

	// ErrUnsupportedFormat indicates a file extension Load does not know.
	ErrUnsupportedFormat = errors.New("problem: unsupported file format")
)

// File is a loaded problem: a graph plus origin and ordered destinations.
type File struct {
	Graph        *core.Graph
	Origin       core.NodeID
	Destinations []core.NodeID
}

// Problem returns the search problem whose designated goal is the first
// destination.
func (f *File) Problem() search.Problem {
	return search.NewProblem(f.Graph, f.Origin, f.Destinations...)
}

// ProblemFor returns the search problem aimed at goal, which must be one of
// the destinations. NoNode selects the first destination.
func (f *File) ProblemFor(goal core.NodeID) (search.Problem, error) {
	p := f.Problem()
	if goal == core.NoNode {
		return p, nil
	}
	if !p.IsDestination(goal) {
		return search.Problem{}, fmt.Errorf("%w: %d not in %v", ErrGoalNotDestination, goal, f.Destinations)
	}
	p.Goal = goal

	return p, nil
}

// draft collects declarations with their source positions until the whole
// input is read, so sections can come in any order.
type draft struct {
	nodes        []nodeDecl
	edges        []edgeDecl
	origin       core.NodeID
	originLine   int
	destinations []core.NodeID
	destLine     int
}

type nodeDecl struct {
	line int
	id   core.NodeID
	x, y float64
}

type edgeDecl struct {
	line     int
	from, to core.NodeID
	cost     float64
}

// build validates d and materializes the graph.
func (d *draft) build(opts ...core.GraphOption) (*File, error) {
	g := core.NewGraph(opts...)
	for _, n := range d.nodes {
		if err := g.AddNode(n.id, n.x, n.y); err != nil {
			return nil, fmt.Errorf("problem: line %d: %w", n.line, err)
		}
	}
	for _, e := range d.edges {
		for _, id := range [2]core.NodeID{e.from, e.to} {
			if !g.HasNode(id) {
				return nil, fmt.Errorf("%w: line %d: edge (%d,%d) uses %d", ErrUnknownNode, e.line, e.from, e.to, id)
			}
		}
		if err := g.AddEdge(e.from, e.to, e.cost); err != nil {
			return nil, fmt.Errorf("problem: line %d: %w", e.line, err)
		}
	}

	if !d.origin.Valid() {
		return nil, fmt.Errorf("%w: origin", ErrMissingSection)
	}
	if !g.HasNode(d.origin) {
		return nil, fmt.Errorf("%w: line %d: origin %d", ErrUnknownNode, d.originLine, d.origin)
	}
	if len(d.destinations) == 0 {
		return nil, fmt.Errorf("%w: destinations", ErrMissingSection)
	}
	for _, id := range d.destinations {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: line %d: destination %d", ErrUnknownNode, d.destLine, id)
		}
	}

	return &File{Graph: g, Origin: d.origin, Destinations: d.destinations}, nil
}
