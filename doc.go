// Package searchlab finds routes through small directed, weighted graphs
// whose nodes sit on a 2D plane, using six classic search strategies that
// share one traversal routine.
//
// Strategies:
//
//	DFS   depth-first, LIFO frontier
//	BFS   breadth-first, FIFO frontier
//	GBFS  greedy best-first on the straight-line estimate h
//	AS    A*, ordered by g + h
//	CUS1  uniform cost, ordered by g (h breaks ties)
//	CUS2  weighted A*, ordered by g + 1.5·h
//
// Packages:
//
//	core/       directed weighted Graph with node coordinates, thread-safe reads
//	heuristic/  Euclidean distance estimate and admissibility check
//	search/     frontier policies, exploration trace, driver and method registry
//	problem/    text and YAML problem files
//	builder/    deterministic fixture graphs (sample, path, grid, random geometric)
//	cmd/searchlab  command-line front end
//
// Quick start:
//
//	f, err := problem.Load("PathFinder-test.txt")
//	if err != nil { ... }
//	res, err := search.Run(f.Problem(), "AS")
//	fmt.Println(res.Goal, res.Expanded)
//	fmt.Println(res.PathString())
//
// Every run is deterministic: neighbors are expanded in ascending node order
// and frontier ties resolve by node ID, then insertion order.
package searchlab
