// Package builder provides deterministic fixture graphs for tests, examples
// and benchmarks of the search engine. Every generator is a Constructor
// closure composed by BuildGraph, configured through functional
// BuilderOptions.
//
// Constructors:
//
//   - Sample():               the six-node course graph (origin 2, destinations 5; 4).
//   - Path(n):                n nodes on the x-axis, edges i→i+1.
//   - Grid(rows, cols):       4-neighbourhood grid with arcs in both directions.
//   - RandomGeometric(n, p):  seeded random points, each ordered pair linked
//     with probability p.
//
// Edge costs of Path, Grid and RandomGeometric are the Euclidean distance
// between endpoints multiplied by the cost scale (≥ 1), so the Euclidean
// heuristic stays admissible and consistent on every generated graph.
//
// Guarantees:
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (errors.Is) and never panic.
package builder
