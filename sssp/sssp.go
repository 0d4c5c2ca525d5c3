// Package sssp computes single-source shortest-path distances on directed
// graphs with non-negative integer weights.
//
// The engine is a min-heap relaxation loop with lazy deletion, extended by a
// periodic frontier reduction: every k finalizations it runs up to k bounded
// Bellman-Ford rounds over the vertices whose tentative distance lies within
// a window W of the frontier minimum, then rebuilds the heap without stale
// entries. Reduction is an optimization only; enabled or disabled, the
// returned distances are identical.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the heap loop, plus O(V + k·E_U) per
//     reduction, where E_U is the number of arcs leaving the candidate set.
//   - Space: O(V + E) for the distance array, finalized flags and the heap
//     (O(E) entries worst case under lazy decrease-key).
//
// Notes on implementation choices:
//
//   - Every arc is scanned up front for negative weights; failing fast keeps
//     the "no partial results" contract for foreign Graph implementations.
//   - Candidate distances saturate at Infinity, so no weight can overflow.
//   - Each call owns its working state; concurrent calls on the same
//     immutable graph need no coordination.
package sssp

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/digraph"
)

// ShortestPath returns the distance from source to every vertex of g.
// Unreachable vertices hold Infinity; dist[source] is 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrInvalidArgument).
//  3. source must lie in [0, V) (ErrOutOfRange).
//  4. No arc may carry a negative weight (ErrInvalidArgument).
//
// No work is done and no result is returned when validation fails.
func ShortestPath(g Graph, source int, opts ...Option) ([]int64, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if isNil(g) {
		return nil, ErrNilGraph
	}
	if cfg.err != nil {
		return nil, fmt.Errorf("sssp: %w", cfg.err)
	}

	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("sssp: source=%d not in [0,%d): %w", source, n, ErrOutOfRange)
	}

	// 2) Pre-scan arcs; this also surfaces adjacency errors before any work.
	if err := validateWeights(g, n); err != nil {
		return nil, err
	}

	// 3) Run.
	r := newRunner(g, n, cfg)
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}
	if cfg.Stats != nil {
		*cfg.Stats = r.stats
	}

	return r.dist, nil
}

// isNil also catches a typed nil *digraph.Graph wrapped in the interface.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	dg, ok := g.(*digraph.Graph)

	return ok && dg == nil
}

func validateWeights(g Graph, n int) error {
	for u := 0; u < n; u++ {
		arcs, err := g.EdgesFrom(u)
		if err != nil {
			return fmt.Errorf("sssp: edges of %d: %w", u, err)
		}
		for _, a := range arcs {
			if a.Weight < 0 {
				return fmt.Errorf("sssp: edge %d→%d weight=%d: %w", u, a.To, a.Weight, ErrInvalidArgument)
			}
			if a.To < 0 || a.To >= n {
				return fmt.Errorf("sssp: edge %d→%d: %w", u, a.To, ErrOutOfRange)
			}
		}
	}

	return nil
}

// runner holds the mutable state of a single ShortestPath execution.
type runner struct {
	g         Graph              // input graph, read-only
	options   Options            // resolved configuration
	k         int                // reduction period and round cap
	dist      []int64            // best known distance per vertex
	finalized []bool             // permanent distances
	pq        frontier           // lazy min-heap
	stats     Stats              // counters, copied out on success
	log       logrus.FieldLogger // debug sink
	debug     bool               // whether debug records are emitted at all
}

func newRunner(g Graph, n int, cfg Options) *runner {
	k := cfg.Rounds
	if k == 0 {
		k = Rounds(n)
	}

	return &runner{
		g:         g,
		options:   cfg,
		k:         k,
		dist:      make([]int64, n),
		finalized: make([]bool, n),
		pq:        make(frontier, 0, n),
		log:       cfg.Logger,
		debug:     debugEnabled(cfg.Logger),
	}
}

// init sets every distance to Infinity except the source, and seeds the heap.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = Infinity
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, entry{v: source, dist: 0})
	r.stats.PeakFrontier = 1
}

// process is the main loop: pop the closest entry, drop it if stale,
// finalize, relax, and every k finalizations reduce the frontier.
func (r *runner) process() error {
	steps := 0
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry)
		r.stats.Pops++

		u := item.v
		if r.finalized[u] {
			r.stats.StalePops++
			continue
		}

		r.finalized[u] = true
		r.stats.Finalized++
		r.options.OnFinalize(u, r.dist[u])

		if err := r.relax(u); err != nil {
			return err
		}

		steps++
		if r.options.Reduction && steps%r.k == 0 && r.pq.Len() > 0 {
			if err := r.reduce(); err != nil {
				return err
			}
		}
	}

	return nil
}

// relax pushes every strict improvement through u's out-arcs.
func (r *runner) relax(u int) error {
	du := r.dist[u]
	if du == Infinity {
		return nil
	}

	arcs, err := r.g.EdgesFrom(u)
	if err != nil {
		return fmt.Errorf("sssp: edges of %d: %w", u, err)
	}
	for _, a := range arcs {
		if !r.improve(du, a.To, a.Weight) {
			continue
		}
		r.stats.Relaxations++
		heap.Push(&r.pq, entry{v: a.To, dist: r.dist[a.To]})
		if r.pq.Len() > r.stats.PeakFrontier {
			r.stats.PeakFrontier = r.pq.Len()
		}
	}

	return nil
}

// improve lowers dist[v] to du+w when v is not finalized and the candidate
// is strictly better. du must be finite. It reports whether dist[v] changed.
func (r *runner) improve(du int64, v int, w int64) bool {
	if r.finalized[v] {
		return false
	}
	// du + w saturates at Infinity, which never beats an existing distance.
	if w >= Infinity-du {
		return false
	}
	cand := du + w
	old := r.dist[v]
	if cand >= old {
		return false
	}
	r.dist[v] = cand
	r.options.OnRelax(v, old, cand)

	return true
}

func debugEnabled(l logrus.FieldLogger) bool {
	switch lg := l.(type) {
	case *logrus.Logger:
		return lg.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return lg.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}
