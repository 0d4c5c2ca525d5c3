// Package digraph provides the index-addressed directed graph consumed by
// the shortest-path engine.
//
// Vertices are the integers [0, VertexCount()). Each vertex owns an ordered
// list of outgoing arcs (head vertex + non-negative weight), kept in
// insertion order. Parallel arcs and self-loops are stored as given; no
// deduplication or merging takes place.
//
// A Graph is built once and then only read. Reads are safe from any number
// of goroutines once building has finished; AddEdge must not race with them.
package digraph

import (
	"fmt"
	"slices"
)

// Method tags used when wrapping sentinels.
const (
	methodNew       = "New"
	methodAddEdge   = "AddEdge"
	methodEdgesFrom = "EdgesFrom"
	methodFromEdges = "FromEdges"
)

// Arc is an outgoing edge as stored under its tail vertex.
type Arc struct {
	To     int   // head vertex
	Weight int64 // non-negative cost
}

// Edge is a fully qualified directed edge From→To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Graph is a directed, non-negatively weighted graph over [0, n).
type Graph struct {
	n     int
	adj   [][]Arc
	edges int
}

// New returns a graph with vertexCount vertices and no edges.
// Returns ErrInvalidArgument if vertexCount < 0.
func New(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, fmt.Errorf("%s: vertexCount=%d < 0: %w", methodNew, vertexCount, ErrInvalidArgument)
	}

	return &Graph{
		n:   vertexCount,
		adj: make([][]Arc, vertexCount),
	}, nil
}

// MustNew is like New but panics on error. Intended for fixtures and examples.
func MustNew(vertexCount int) *Graph {
	g, err := New(vertexCount)
	if err != nil {
		panic(err)
	}

	return g
}

// FromEdges builds a graph with n vertices and the given edges, added in order.
// The first failing edge aborts construction and no graph is returned.
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%s: edge #%d: %w", methodFromEdges, i, err)
		}
	}

	return g, nil
}

// AddEdge appends the directed edge u→v with the given weight.
//
// Errors:
//   - ErrOutOfRange if u or v is outside [0, VertexCount()).
//   - ErrInvalidArgument if weight < 0.
//
// The graph is left untouched on error.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if !g.has(u) {
		return fmt.Errorf("%s: from=%d not in [0,%d): %w", methodAddEdge, u, g.n, ErrOutOfRange)
	}
	if !g.has(v) {
		return fmt.Errorf("%s: to=%d not in [0,%d): %w", methodAddEdge, v, g.n, ErrOutOfRange)
	}
	if weight < 0 {
		return fmt.Errorf("%s: %d→%d weight=%d: %w", methodAddEdge, u, v, weight, ErrInvalidArgument)
	}

	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: weight})
	g.edges++

	return nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of stored arcs, parallel arcs included.
func (g *Graph) EdgeCount() int { return g.edges }

// EdgesFrom returns the outgoing arcs of u in insertion order.
//
// The slice is a view into the graph and must be treated as read-only. Its
// capacity is clipped, so appending to it never writes into the graph.
// Returns ErrOutOfRange if u is outside [0, VertexCount()).
func (g *Graph) EdgesFrom(u int) ([]Arc, error) {
	if !g.has(u) {
		return nil, fmt.Errorf("%s: vertex=%d not in [0,%d): %w", methodEdgesFrom, u, g.n, ErrOutOfRange)
	}

	return slices.Clip(g.adj[u]), nil
}

// Edges returns a copy of every edge, ordered by source vertex and then by
// insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, arcs := range g.adj {
		for _, a := range arcs {
			out = append(out, Edge{From: u, To: a.To, Weight: a.Weight})
		}
	}

	return out
}

func (g *Graph) has(v int) bool { return v >= 0 && v < g.n }
