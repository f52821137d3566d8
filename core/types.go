// Package core defines the Graph, Node, Edge and Arc types used by every
// search strategy, and provides thread-safe primitives for building and
// querying a directed, weighted graph whose nodes carry 2D coordinates.
//
// A Graph is built once (typically by the problem loader) and then only read.
// All read methods take a read lock, so the same Graph can be handed to any
// number of searches, sequential or concurrent, without copying.
//
// This file declares NodeID, Point, Node, Edge, Arc, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrInvalidNodeID  - node ID is not a positive integer.
//	ErrDuplicateNode  - a node with the same ID already exists.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeCost   - edge cost is below zero.
//	ErrBadCost        - edge cost is NaN or infinite.
//	ErrBadCoordinate  - node coordinate is NaN or infinite.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
//	ErrDuplicateEdge  - second edge for the same ordered (from, to) pair.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeID indicates that a node ID is zero or negative.
	ErrInvalidNodeID = errors.New("core: node ID must be a positive integer")

	// ErrDuplicateNode indicates that AddNode was called twice for the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeCost indicates an edge cost below zero.
	ErrNegativeCost = errors.New("core: negative edge cost")

	// ErrBadCost indicates an edge cost that is NaN or infinite.
	ErrBadCost = errors.New("core: edge cost is not a finite number")

	// ErrBadCoordinate indicates a node coordinate that is NaN or infinite.
	ErrBadCoordinate = errors.New("core: coordinate is not a finite number")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge for an ordered pair that already has one.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// NodeID identifies a node. Valid IDs are positive; NoNode (zero) means "none".
type NodeID int

// NoNode is the zero NodeID. It is used as the parent of the origin and as
// the goal of a search that found nothing.
const NoNode NodeID = 0

// Valid reports whether id is usable as a node identifier.
func (id NodeID) Valid() bool { return id > 0 }

// Point is a position on the plane.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Node represents a vertex of the graph together with its coordinates.
type Node struct {
	// ID is the unique identifier for this Node.
	ID NodeID `json:"id" yaml:"id"`

	// Point is the node position used by distance heuristics.
	Point Point `json:"point" yaml:"point"`
}

// Edge represents a directed, weighted connection From→To.
// The presence of (a→b) says nothing about (b→a).
type Edge struct {
	From NodeID  `json:"from" yaml:"from"`
	To   NodeID  `json:"to" yaml:"to"`
	Cost float64 `json:"cost" yaml:"cost"`
}

// Arc is an outgoing edge as seen from its source node.
type Arc struct {
	To   NodeID
	Cost float64
}

// EdgePolicy selects how AddEdge treats a second edge for the same ordered pair.
type EdgePolicy int

const (
	// RejectDuplicates makes AddEdge fail with ErrDuplicateEdge (default).
	RejectDuplicates EdgePolicy = iota

	// FirstEdgeWins keeps the first-listed cost and silently ignores later ones.
	FirstEdgeWins
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops rejects self-loops (edges from a node to itself).
// Loops are legal by default; the visited-set discipline of every search
// strategy makes them harmless.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = false }
}

// WithFirstEdgeWins switches the duplicate-edge policy to FirstEdgeWins.
func WithFirstEdgeWins() GraphOption {
	return func(g *Graph) { g.edgePolicy = FirstEdgeWins }
}

// Graph is the in-memory directed weighted graph.
//
// mu protects every field below it. Adjacency slices are kept sorted by
// ascending Arc.To at insertion time, so Neighbors never has to sort.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	allowLoops bool
	edgePolicy EdgePolicy

	// Storage
	nodes     map[NodeID]*Node
	adjacency map[NodeID][]Arc // from → arcs sorted by To asc
	edgeCount int
}

// NewGraph creates an empty Graph with the given options.
// By default loops are allowed and duplicate edges are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		allowLoops: true,
		edgePolicy: RejectDuplicates,
		nodes:      make(map[NodeID]*Node),
		adjacency:  make(map[NodeID][]Arc),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Policy reports the duplicate-edge policy chosen at construction time.
func (g *Graph) Policy() EdgePolicy {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgePolicy
}
