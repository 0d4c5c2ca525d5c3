// SPDX-License-Identifier: MIT
// Package: frontier/sssp
//
// reduce.go: frontier reduction.
//
// Contract:
//   - Never finalizes a vertex and never raises a distance.
//   - On return every non-finalized vertex with a finite distance has exactly
//     one heap entry keyed by its current distance; nothing else is queued.
//   - Final distances are identical with reduction on or off.
//
// Steps:
//  1. minFrontierDist over all queued entries, stale included.
//  2. B = minFrontierDist + W (saturating).
//  3. U = { u : !finalized[u], dist[u] finite, dist[u] < B }, ascending u.
//  4. Skip when U is empty or |U| > k·|frontier|.
//  5. Up to k Bellman-Ford rounds over arcs leaving U; stop after a quiet round.
//  6. Rebuild the heap: U first, then the deferred vertices at or beyond B.

package sssp

import (
	"container/heap"
	"slices"

	"github.com/sirupsen/logrus"
)

// reduce runs one frontier reduction against the runner state.
func (r *runner) reduce() error {
	minDist := r.pq.minDist()
	if minDist == Infinity {
		r.stats.ReductionsSkipped++
		return nil
	}
	bound := saturatingAdd(minDist, r.options.Window)

	candidates := r.candidates(bound)
	frontierLen := r.pq.Len()
	if len(candidates) == 0 || len(candidates) > r.k*frontierLen {
		r.stats.ReductionsSkipped++
		if r.debug {
			r.log.WithFields(logrus.Fields{
				"bound":      bound,
				"candidates": len(candidates),
				"frontier":   frontierLen,
			}).Debug("frontier reduction skipped")
		}

		return nil
	}

	rounds, relaxed, err := r.boundedRelax(candidates)
	if err != nil {
		return err
	}
	r.stats.Reductions++
	r.stats.ReductionRounds += rounds
	r.stats.ReductionRelaxes += relaxed

	r.rebuild(candidates, bound)
	if r.debug {
		r.log.WithFields(logrus.Fields{
			"bound":      bound,
			"candidates": len(candidates),
			"rounds":     rounds,
			"relaxed":    relaxed,
			"before":     frontierLen,
			"after":      r.pq.Len(),
		}).Debug("frontier reduced")
	}

	return nil
}

// candidates returns U for the given bound in ascending vertex order.
func (r *runner) candidates(bound int64) []int {
	var u []int
	for v, d := range r.dist {
		if !r.finalized[v] && d != Infinity && d < bound {
			u = append(u, v)
		}
	}

	return u
}

// boundedRelax runs at most k Bellman-Ford rounds over the arcs leaving
// candidates. It returns the rounds executed and the successful relaxations.
func (r *runner) boundedRelax(candidates []int) (int, int, error) {
	var rounds, relaxed int
	for rounds < r.k {
		rounds++
		changed := false
		for _, u := range candidates {
			du := r.dist[u]
			if du == Infinity {
				continue
			}
			arcs, err := r.g.EdgesFrom(u)
			if err != nil {
				return rounds, relaxed, err
			}
			for _, a := range arcs {
				if r.improve(du, a.To, a.Weight) {
					relaxed++
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return rounds, relaxed, nil
}

// rebuild replaces the heap with one live entry per tentative vertex:
// the candidates first, then every vertex deferred beyond the window or
// first reached during the bounded rounds.
func (r *runner) rebuild(candidates []int, bound int64) {
	r.pq = r.pq[:0]
	for _, u := range candidates {
		if !r.finalized[u] && r.dist[u] != Infinity {
			r.pq = append(r.pq, entry{v: u, dist: r.dist[u]})
		}
	}
	inCandidates := len(r.pq)
	for v, d := range r.dist {
		if r.finalized[v] || d == Infinity {
			continue
		}
		if _, ok := slices.BinarySearch(candidates, v); ok {
			continue
		}
		r.pq = append(r.pq, entry{v: v, dist: d})
	}
	heap.Init(&r.pq)
	if len(r.pq) > r.stats.PeakFrontier {
		r.stats.PeakFrontier = len(r.pq)
	}

	if r.debug && len(r.pq) > inCandidates {
		r.log.WithFields(logrus.Fields{
			"bound":    bound,
			"deferred": len(r.pq) - inCandidates,
		}).Debug("frontier kept deferred vertices")
	}
}

// saturatingAdd returns a+b for non-negative operands, capped at Infinity.
func saturatingAdd(a, b int64) int64 {
	if b >= Infinity-a {
		return Infinity
	}

	return a + b
}
