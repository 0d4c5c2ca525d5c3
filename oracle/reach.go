package oracle

import (
	"context"
	"fmt"

	"github.com/katalvlaran/frontier/digraph"
)

const opHops = "Hops"

// Unreached marks a vertex with no path from the source in Hops.
const Unreached = -1

// walker holds the mutable breadth-first state.
type walker struct {
	g     *digraph.Graph
	ctx   context.Context
	queue []int
	depth []int
}

// Hops returns the unweighted hop count from source to every vertex, or
// Unreached. A vertex is reachable by Hops exactly when any weighted
// shortest-path distance to it is finite, which makes it an independent
// check on which entries must report Infinity.
//
// The walk checks ctx once per dequeued vertex and returns ctx.Err() when
// cancelled.
//
// Complexity: Time O(V + E), Space O(V).
func Hops(ctx context.Context, g *digraph.Graph, source int) ([]int, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil graph: %w", opHops, digraph.ErrInvalidArgument)
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%s: source=%d not in [0,%d): %w", opHops, source, n, digraph.ErrOutOfRange)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	w := &walker{g: g, ctx: ctx, queue: make([]int, 0, n), depth: make([]int, n)}
	for v := range w.depth {
		w.depth[v] = Unreached
	}
	w.enqueue(source, 0)

	return w.depth, w.loop()
}

func (w *walker) enqueue(v, d int) {
	w.depth[v] = d
	w.queue = append(w.queue, v)
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]

		arcs, err := w.g.EdgesFrom(u)
		if err != nil {
			return fmt.Errorf("%s: edges of %d: %w", opHops, u, err)
		}
		for _, a := range arcs {
			if w.depth[a.To] == Unreached {
				w.enqueue(a.To, w.depth[u]+1)
			}
		}
	}

	return nil
}
