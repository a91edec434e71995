// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestDefaults verifies the zero-option configuration.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if !cfg.rotate {
		t.Error("default rotate: expected true")
	}
}

// TestRandOptions verifies WithSeed determinism, WithRand identity and
// last-wins ordering.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	if a.rng.Int63() != b.rng.Int63() {
		t.Error("WithSeed: expected identical streams for equal seeds")
	}

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(5), WithRand(r))
	if c.rng != r {
		t.Error("WithRand after WithSeed: expected the explicit rng to win")
	}

	d := newBuilderConfig(WithoutRotation())
	if d.rotate {
		t.Error("WithoutRotation: expected rotate=false")
	}
}

// TestWithRandNilPanics verifies the nil guard.
func TestWithRandNilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithRand(nil): expected panic")
		}
	}()
	_ = WithRand(nil)
}
