// SPDX-License-Identifier: MIT
// Package: frontier/digraph
//
// random.go: seeded random digraph generators for workloads and tests.
//
// Contract:
//   - n ≥ 0, 0 ≤ p ≤ 1, maxWeight ≥ 0 (else ErrInvalidArgument).
//   - rng must be non-nil whenever an outcome is actually random.
//   - Weights are drawn uniformly from [0, maxWeight].
//
// Determinism:
//   - Stable trial order: for each i asc, j asc. A fixed seed always yields
//     the same graph, arc for arc.

package digraph

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomSparse    = "RandomSparse"
	methodRandomConnected = "RandomConnected"
	probMin               = 0.0
	probMax               = 1.0
)

// RandomSparse samples an Erdős–Rényi-like digraph: every ordered pair (i,j)
// with i != j becomes an arc with independent probability p.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, maxWeight int64, rng *rand.Rand) (*Graph, error) {
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidArgument)
	}
	if maxWeight < 0 {
		return nil, fmt.Errorf("%s: maxWeight=%d < 0: %w", methodRandomSparse, maxWeight, ErrInvalidArgument)
	}
	// RNG is only required for true sampling; p ∈ {0,1} is decided up front.
	if rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required for p=%.6f: %w", methodRandomSparse, p, ErrInvalidArgument)
	}
	if rng == nil && p == probMax && maxWeight > 0 {
		return nil, fmt.Errorf("%s: rng is required for random weights: %w", methodRandomSparse, ErrInvalidArgument)
	}

	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}
	if p == probMin {
		return g, nil
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng != nil && p < probMax && rng.Float64() > p {
				continue
			}
			// Endpoints and weight are in range by construction.
			_ = g.AddEdge(i, j, randWeight(rng, maxWeight))
		}
	}

	return g, nil
}

// RandomConnected returns a digraph in which every vertex is reachable from
// vertex 0: a random out-tree (vertex i attaches below a random vertex in
// [0,i)) followed by extra uniformly random arcs, self-loops included.
//
// Complexity: O(n + extra).
func RandomConnected(n, extra int, maxWeight int64, rng *rand.Rand) (*Graph, error) {
	if extra < 0 {
		return nil, fmt.Errorf("%s: extra=%d < 0: %w", methodRandomConnected, extra, ErrInvalidArgument)
	}
	if maxWeight < 0 {
		return nil, fmt.Errorf("%s: maxWeight=%d < 0: %w", methodRandomConnected, maxWeight, ErrInvalidArgument)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrInvalidArgument)
	}

	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomConnected, err)
	}
	for v := 1; v < n; v++ {
		_ = g.AddEdge(rng.Intn(v), v, randWeight(rng, maxWeight))
	}
	if n == 0 {
		return g, nil
	}
	for i := 0; i < extra; i++ {
		_ = g.AddEdge(rng.Intn(n), rng.Intn(n), randWeight(rng, maxWeight))
	}

	return g, nil
}

// randWeight draws from [0, maxWeight]; nil rng or maxWeight 0 yields 0.
func randWeight(rng *rand.Rand, maxWeight int64) int64 {
	if rng == nil || maxWeight == 0 {
		return 0
	}
	if maxWeight == 1<<63-1 {
		return rng.Int63()
	}

	return rng.Int63n(maxWeight + 1)
}
