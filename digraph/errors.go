// SPDX-License-Identifier: MIT
// Package: frontier/digraph
//
// errors.go: sentinel errors for the digraph package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context (method, offending value) with %w.

package digraph

import "errors"

// ErrInvalidArgument indicates a parameter outside its domain: a negative
// vertex count, a negative edge weight, a probability outside [0,1], etc.
var ErrInvalidArgument = errors.New("digraph: invalid argument")

// ErrOutOfRange indicates a vertex index outside [0, VertexCount()).
var ErrOutOfRange = errors.New("digraph: vertex out of range")
