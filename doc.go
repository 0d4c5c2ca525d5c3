// Package frontier is a single-source shortest-path toolkit for directed
// graphs with non-negative integer weights.
//
// The engine is lazy-deletion Dijkstra that periodically shrinks its
// priority queue with a bounded Bellman-Ford pass over the vertices near
// the frontier minimum ("frontier reduction"). Results are identical with
// the reduction on or off.
//
// Subpackages:
//
//	digraph/       adjacency-list digraph, validation, seeded random generators
//	sssp/          the engine: ShortestPath, options, hooks, counters
//	oracle/        Bellman-Ford, Floyd-Warshall and reachability references
//	graphio/       YAML/JSON graph documents and distance rendering
//	cmd/frontier/  command-line front end (demo, solve, random)
//
// Quick start:
//
//	g, _ := digraph.FromEdges(3, []digraph.Edge{{From: 0, To: 1, Weight: 4}, {From: 1, To: 2, Weight: 1}})
//	dist, err := sssp.ShortestPath(g, 0)
//	// dist == [0 4 5]
//
// Unreachable vertices report sssp.Infinity (math.MaxInt64).
package frontier
