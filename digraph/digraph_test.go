package digraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontier/digraph"
)

func TestNew_Validation(t *testing.T) {
	_, err := digraph.New(-1)
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)

	g, err := digraph.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Edges())
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() { digraph.MustNew(-3) })
	assert.NotPanics(t, func() { digraph.MustNew(3) })
}

func TestAddEdge_Errors(t *testing.T) {
	g := digraph.MustNew(3)

	cases := []struct {
		name    string
		u, v    int
		w       int64
		wantErr error
	}{
		{"negative from", -1, 0, 1, digraph.ErrOutOfRange},
		{"from too large", 3, 0, 1, digraph.ErrOutOfRange},
		{"negative to", 0, -1, 1, digraph.ErrOutOfRange},
		{"to too large", 0, 3, 1, digraph.ErrOutOfRange},
		{"negative weight", 0, 1, -5, digraph.ErrInvalidArgument},
		{"range beats weight", 9, 1, -5, digraph.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v, tc.w)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
	// Nothing was stored by the failed calls.
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_InsertionOrderAndMultiEdges(t *testing.T) {
	g := digraph.MustNew(3)
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(0, 1, 0)) // zero weight is accepted
	require.NoError(t, g.AddEdge(0, 2, 1)) // parallel arc kept
	require.NoError(t, g.AddEdge(1, 1, 4)) // self-loop kept

	arcs, err := g.EdgesFrom(0)
	require.NoError(t, err)
	assert.Equal(t, []digraph.Arc{{To: 2, Weight: 5}, {To: 1, Weight: 0}, {To: 2, Weight: 1}}, arcs)

	arcs, err = g.EdgesFrom(2)
	require.NoError(t, err)
	assert.Empty(t, arcs)

	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, []digraph.Edge{
		{From: 0, To: 2, Weight: 5},
		{From: 0, To: 1, Weight: 0},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 1, Weight: 4},
	}, g.Edges())
}

func TestEdgesFrom_ViewIsClipped(t *testing.T) {
	g := digraph.MustNew(2)
	require.NoError(t, g.AddEdge(0, 1, 1))

	arcs, err := g.EdgesFrom(0)
	require.NoError(t, err)
	_ = append(arcs, digraph.Arc{To: 0, Weight: 9})

	again, err := g.EdgesFrom(0)
	require.NoError(t, err)
	assert.Len(t, again, 1)

	_, err = g.EdgesFrom(2)
	assert.ErrorIs(t, err, digraph.ErrOutOfRange)
}

func TestFromEdges(t *testing.T) {
	g, err := digraph.FromEdges(3, []digraph.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	_, err = digraph.FromEdges(3, []digraph.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 7, Weight: 3},
	})
	assert.ErrorIs(t, err, digraph.ErrOutOfRange)

	_, err = digraph.FromEdges(-1, nil)
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)
}

func TestRandomSparse(t *testing.T) {
	_, err := digraph.RandomSparse(4, 1.5, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)
	_, err = digraph.RandomSparse(4, 0.5, -1, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)
	_, err = digraph.RandomSparse(4, 0.5, 10, nil)
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)
	_, err = digraph.RandomSparse(-1, 0.5, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)

	empty, err := digraph.RandomSparse(5, 0, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())

	full, err := digraph.RandomSparse(5, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 5*4, full.EdgeCount())

	a, err := digraph.RandomSparse(20, 0.2, 50, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := digraph.RandomSparse(20, 0.2, 50, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed must give the same graph")

	for _, e := range a.Edges() {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, int64(0))
		assert.LessOrEqual(t, e.Weight, int64(50))
	}
}

func TestRandomConnected(t *testing.T) {
	_, err := digraph.RandomConnected(5, -1, 10, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)
	_, err = digraph.RandomConnected(5, 1, 10, nil)
	assert.ErrorIs(t, err, digraph.ErrInvalidArgument)

	g, err := digraph.RandomConnected(30, 40, 9, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, 29+40, g.EdgeCount())

	// Every vertex is reachable from 0.
	seen := make([]bool, g.VertexCount())
	seen[0] = true
	stack := []int{0}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		arcs, err := g.EdgesFrom(u)
		require.NoError(t, err)
		for _, a := range arcs {
			if !seen[a.To] {
				seen[a.To] = true
				stack = append(stack, a.To)
			}
		}
	}
	for v, ok := range seen {
		assert.Truef(t, ok, "vertex %d unreachable", v)
	}

	zero, err := digraph.RandomConnected(0, 5, 9, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	assert.Equal(t, 0, zero.EdgeCount())
}
