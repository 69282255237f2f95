// SPDX-License-Identifier: MIT
// Package: chordal/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil (no randomness unless WithSeed/WithRand is given)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means the constructor that needs one
	// must report ErrNeedRandSource rather than silently seeding itself.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
