// SPDX-License-Identifier: MIT
// Package: rehexed/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil   (Shuffle refuses to run without one)
//   • rotate = true  (Shuffle also rotates corners within each triangle)

package builder

import (
	"math"
	"math/rand"
)

// builderConfig aggregates the knobs used by the stochastic helpers.
// It is passed by value.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Rotate corners of each triangle in Shuffle.
	rotate bool
}

// maxVertexCount keeps every index strictly below rehex.Absent.
const maxVertexCount = math.MaxUint32

// newBuilderConfig applies all options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		rotate: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
