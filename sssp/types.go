// Package sssp defines configuration options, counters and sentinel errors
// for the single-source shortest-path engine.
//
// Options:
//
//	– WithReduction / WithoutReduction: toggle periodic frontier reduction (default on).
//	– WithRounds:  reduction period and Bellman-Ford round cap k (0 = automatic).
//	– WithWindow:  width W of the candidate window above the frontier minimum.
//	– WithLogger:  logrus logger receiving debug records about reductions.
//	– WithStats:   destination for per-solve counters.
//	– OnRelax / OnFinalize: observation hooks.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the graph is nil.
//	– ErrInvalidArgument  if an option carries an invalid value.
//	– ErrOutOfRange       if the source vertex is outside [0, V).
package sssp

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/digraph"
)

// Infinity is the distance reported for vertices unreachable from the source.
// A path whose total weight reaches math.MaxInt64 is reported as Infinity too;
// every finite distance is strictly below it.
const Infinity int64 = math.MaxInt64

// DefaultWindow is the reduction window W used when WithWindow is not given.
const DefaultWindow int64 = 10

// minRounds is the lower bound of the automatic reduction parameter k.
const minRounds = 2

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrInvalidArgument is digraph.ErrInvalidArgument, re-exported so callers
	// can match engine and graph failures with one sentinel.
	ErrInvalidArgument = digraph.ErrInvalidArgument

	// ErrOutOfRange is digraph.ErrOutOfRange; returned for a bad source vertex.
	ErrOutOfRange = digraph.ErrOutOfRange
)

// Graph is the read-only view the engine needs. *digraph.Graph satisfies it.
type Graph interface {
	VertexCount() int
	EdgesFrom(u int) ([]digraph.Arc, error)
}

// Stats collects counters for a single ShortestPath call.
// Pops always equals Finalized + StalePops.
type Stats struct {
	Pops              int // heap extractions
	StalePops         int // extractions discarded because the vertex was already finalized
	Finalized         int // vertices whose distance became permanent
	Relaxations       int // successful relaxations in the main loop (each pushes one entry)
	ReductionRelaxes  int // successful relaxations inside reduction rounds
	Reductions        int // reductions that ran their rounds and rebuilt the frontier
	ReductionsSkipped int // reductions abandoned: no finite frontier key, or the size guard
	ReductionRounds   int // Bellman-Ford rounds executed across all reductions
	PeakFrontier      int // largest heap length observed
}

// Options configures ShortestPath.
type Options struct {
	// Reduction enables the periodic frontier-reduction step.
	Reduction bool

	// Rounds is k: reduction fires every k finalizations and runs at most k
	// Bellman-Ford rounds. Zero selects Rounds(V).
	Rounds int

	// Window is W in the candidate bound B = minFrontierDist + W.
	Window int64

	// Logger receives debug records; never nil after DefaultOptions.
	Logger logrus.FieldLogger

	// Stats, if non-nil, is overwritten with the counters of the call.
	Stats *Stats

	// OnRelax observes every distance decrease, old > next always.
	OnRelax func(v int, old, next int64)

	// OnFinalize observes every finalization, in non-decreasing distance order.
	OnFinalize func(v int, dist int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPath.
// An invalid Option is recorded and reported as ErrInvalidArgument by
// ShortestPath rather than panicking.
type Option func(*Options)

// WithReduction enables or disables frontier reduction. Disabled, the
// engine is plain lazy-deletion Dijkstra; results are identical.
func WithReduction(enabled bool) Option {
	return func(o *Options) {
		o.Reduction = enabled
	}
}

// WithoutReduction is shorthand for WithReduction(false).
func WithoutReduction() Option {
	return WithReduction(false)
}

// WithRounds overrides the reduction parameter k. Zero restores the
// automatic value; negative values are rejected.
func WithRounds(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.fail(fmt.Errorf("WithRounds: k=%d < 0: %w", k, ErrInvalidArgument))
			return
		}
		o.Rounds = k
	}
}

// WithWindow sets the window W. Any non-negative value keeps results exact;
// zero restricts candidates to vertices tied with the frontier minimum.
func WithWindow(w int64) Option {
	return func(o *Options) {
		if w < 0 {
			o.fail(fmt.Errorf("WithWindow: w=%d < 0: %w", w, ErrInvalidArgument))
			return
		}
		o.Window = w
	}
}

// WithLogger routes debug output to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			o.fail(fmt.Errorf("WithLogger: nil logger: %w", ErrInvalidArgument))
			return
		}
		o.Logger = l
	}
}

// WithStats makes ShortestPath fill s with its counters.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// OnRelax registers a hook called after every distance decrease.
func OnRelax(fn func(v int, old, next int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// OnFinalize registers a hook called when a vertex is finalized.
func OnFinalize(fn func(v int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFinalize = fn
		}
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns the configuration used when no options are given:
//   - Reduction: true
//   - Rounds:    0 (automatic, see Rounds)
//   - Window:    DefaultWindow
//   - Logger:    logrus logger writing to io.Discard
//   - no-op hooks, no Stats.
func DefaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return Options{
		Reduction:  true,
		Rounds:     0,
		Window:     DefaultWindow,
		Logger:     discard,
		OnRelax:    func(int, int64, int64) {},
		OnFinalize: func(int, int64) {},
	}
}

// Rounds returns the automatic reduction parameter for n vertices:
// max(2, round(log2(n+1))).
func Rounds(n int) int {
	if n < 0 {
		n = 0
	}
	k := int(math.Round(math.Log2(float64(n) + 1)))
	if k < minRounds {
		return minRounds
	}

	return k
}
