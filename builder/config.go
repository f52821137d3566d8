// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - firstID   = 1     (node IDs are positive)
//   - rng       = nil   (pure/deterministic unless seeded)
//   - costScale = 1.0   (edge cost equals straight-line distance)
//   - extent    = 10.0  (RandomGeometric coordinate range [0, extent))

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// first node ID emitted by ID-generating constructors
	firstID int
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// multiplier applied to Euclidean edge lengths (>= 1)
	costScale float64
	// side of the square RandomGeometric samples points from
	extent float64
}

const (
	defaultFirstID   = 1
	defaultCostScale = 1.0
	defaultExtent    = 10.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		firstID:   defaultFirstID,
		rng:       nil,
		costScale: defaultCostScale,
		extent:    defaultExtent,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
