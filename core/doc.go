// Package core provides the thread-safe, in-memory directed weighted Graph
// that every search strategy in searchlab reads from.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are identified by positive integers (NodeID) and carry a 2D Point.
//   - Edges are directed and carry a finite, non-negative float64 cost.
//   - Self-loops are legal unless WithoutLoops() is given.
//   - A second edge for the same ordered pair is rejected (ErrDuplicateEdge)
//     unless WithFirstEdgeWins() is given, in which case the first-listed
//     cost is kept and later ones are ignored.
//
// Deterministic iteration:
//
//	Nodes()      → node IDs ascending
//	Neighbors(v) → outgoing arcs ascending by destination ID
//	Edges()      → edges ascending by (From, To)
//
// The Neighbors ordering is an observable invariant: search strategies push
// neighbors in this order, so it fixes tie-breaks across the whole engine.
//
// Core Methods:
//
//	AddNode(id NodeID, x, y float64) error          // O(1)
//	AddEdge(from, to NodeID, cost float64) error    // O(d)
//	HasNode(id) bool, HasEdge(from, to) bool         // O(1), O(log d)
//	Coordinates(id) (Point, error)                   // O(1)
//	Neighbors(id) ([]Arc, error)                     // O(d)
//	Cost(from, to) (float64, error)                  // O(log d)
//	Nodes(), Edges(), NodeCount(), EdgeCount()
//	Clone(), Equal(other)
//
// Errors are package sentinels; wrap-aware callers should use errors.Is.
//
//	g := core.NewGraph()
//	_ = g.AddNode(1, 4, 1)
//	_ = g.AddNode(2, 2, 2)
//	_ = g.AddEdge(2, 1, 4)
//	arcs, _ := g.Neighbors(2) // [{To:1 Cost:4}]
package core
