// SPDX-License-Identifier: MIT
// Package: frontier/oracle
//
// Purpose:
//   - Brute-force reference distances used to verify the shortest-path engine.
//   - Bellman-Ford (single source, O(V·E)) and Floyd–Warshall (all pairs, O(V³)).
//
// Contract:
//   - Distances are int64; sssp.Infinity (math.MaxInt64) means "no path".
//   - Additions saturate at Infinity, so large weights never overflow.
//   - Loop orders are fixed, results are deterministic.

// Package oracle holds slow, obviously-correct shortest-path algorithms that
// serve as ground truth in tests and in the CLI's --verify mode.
package oracle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/frontier/digraph"
)

// Infinity mirrors sssp.Infinity without importing the engine under test.
const Infinity int64 = math.MaxInt64

const (
	opBellmanFord   = "BellmanFord"
	opFloydWarshall = "FloydWarshall"
)

// BellmanFord returns single-source distances from source.
// Returns digraph.ErrInvalidArgument for a nil graph and
// digraph.ErrOutOfRange for a bad source.
//
// Complexity: Time O(V·E), Space O(V).
func BellmanFord(g *digraph.Graph, source int) ([]int64, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", opBellmanFord, digraph.ErrInvalidArgument)
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%s: source=%d not in [0,%d): %w", opBellmanFord, source, n, digraph.ErrOutOfRange)
	}

	dist := make([]int64, n)
	for v := range dist {
		dist[v] = Infinity
	}
	dist[source] = 0

	edges := g.Edges()
	var round int
	for round = 0; round < n-1; round++ {
		changed := false
		for _, e := range edges {
			if cand := add(dist[e.From], e.Weight); cand < dist[e.To] {
				dist[e.To] = cand
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return dist, nil
}

// FloydWarshall returns the all-pairs distance matrix; row i holds the
// distances from vertex i. Parallel arcs collapse to their minimum.
//
// Loop order is fixed (k → i → j). Time O(V³), Space O(V²).
func FloydWarshall(g *digraph.Graph) ([][]int64, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", opFloydWarshall, digraph.ErrInvalidArgument)
	}
	n := g.VertexCount()

	d := make([][]int64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		d[i] = make([]int64, n)
		for j = 0; j < n; j++ {
			d[i][j] = Infinity
		}
		d[i][i] = 0
	}
	for _, e := range g.Edges() {
		if e.Weight < d[e.From][e.To] {
			d[e.From][e.To] = e.Weight
		}
	}

	var ik, kj, cand int64
	for k = 0; k < n; k++ {
		for i = 0; i < n; i++ {
			ik = d[i][k]
			if ik == Infinity { // i cannot reach k
				continue
			}
			for j = 0; j < n; j++ {
				kj = d[k][j]
				if kj == Infinity {
					continue
				}
				cand = add(ik, kj)
				if cand < d[i][j] { // strict improvement only
					d[i][j] = cand
				}
			}
		}
	}

	return d, nil
}

// add returns a+b capped at Infinity; either operand at Infinity yields Infinity.
func add(a, b int64) int64 {
	if a == Infinity || b == Infinity || b >= Infinity-a {
		return Infinity
	}

	return a + b
}
