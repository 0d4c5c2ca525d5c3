// Package sssp_test provides runnable examples for the shortest-path engine.
package sssp_test

import (
	"fmt"

	"github.com/katalvlaran/frontier/digraph"
	"github.com/katalvlaran/frontier/sssp"
)

// ExampleShortestPath solves the five-vertex reference graph from vertex 0.
func ExampleShortestPath() {
	g := digraph.MustNew(5)
	g.AddEdge(0, 1, 10)
	g.AddEdge(0, 2, 3)
	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 3, 2)
	g.AddEdge(2, 1, 4)
	g.AddEdge(2, 3, 8)
	g.AddEdge(2, 4, 2)
	g.AddEdge(3, 4, 7)
	g.AddEdge(4, 3, 9)

	dist, err := sssp.ShortestPath(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist)
	// Output: [0 7 3 9 5]
}

// ExampleShortestPath_unreachable shows the Infinity sentinel.
func ExampleShortestPath_unreachable() {
	g := digraph.MustNew(3)
	g.AddEdge(0, 1, 4)

	dist, _ := sssp.ShortestPath(g, 0)
	for v, d := range dist {
		if d == sssp.Infinity {
			fmt.Printf("%d: unreachable\n", v)
			continue
		}
		fmt.Printf("%d: %d\n", v, d)
	}
	// Output:
	// 0: 0
	// 1: 4
	// 2: unreachable
}

// ExampleWithStats compares the work done with and without frontier reduction.
func ExampleWithStats() {
	g := digraph.MustNew(5)
	g.AddEdge(0, 1, 1)
	g.AddEdge(0, 2, 2)
	g.AddEdge(0, 3, 100)
	g.AddEdge(3, 4, 1)

	var on, off sssp.Stats
	a, _ := sssp.ShortestPath(g, 0, sssp.WithRounds(2), sssp.WithStats(&on))
	b, _ := sssp.ShortestPath(g, 0, sssp.WithoutReduction(), sssp.WithStats(&off))

	fmt.Println(a, b)
	fmt.Println("finalized:", on.Finalized, off.Finalized)
	fmt.Println("reductions:", on.Reductions, off.Reductions)
	// Output:
	// [0 1 2 100 101] [0 1 2 100 101]
	// finalized: 5 5
	// reductions: 2 0
}
