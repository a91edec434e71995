// SPDX-License-Identifier: MIT
// Package: rehexed/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a ring or solid with fewer vertices than a
// closed fan needs (three).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooFewSegments indicates a subdivision count below one.
var ErrTooFewSegments = errors.New("builder: segments must be at least 1")

// ErrTooManyVertices indicates a mesh whose vertex indices would not fit in
// uint32 below the rehex.Absent sentinel.
var ErrTooManyVertices = errors.New("builder: too many vertices")

// ErrUnsupportedSolid indicates a Platonic solid whose faces are not
// triangles (Cube, Dodecahedron) or an unknown name.
var ErrUnsupportedSolid = errors.New("builder: solid has no triangle mesh")

// ErrNeedRandSource indicates that a stochastic helper requires a *rand.Rand
// (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrMalformedMesh indicates a Mesh whose index list is not a multiple of
// three or names a vertex >= VertexCount.
var ErrMalformedMesh = errors.New("builder: malformed mesh")

// builderErrorf prefixes a sentinel with the method tag and detail:
// "<method>: <detail>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
