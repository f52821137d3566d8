// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostScale multiplies every generated edge length by s.
// Panics if s < 1: a smaller scale would make edges cheaper than the
// straight-line distance and break heuristic admissibility.
func WithCostScale(s float64) BuilderOption {
	if !(s >= 1) {
		panic("builder: WithCostScale(s<1)")
	}
	return func(c *builderConfig) {
		c.costScale = s
	}
}

// WithFirstID sets the first node ID emitted by Path, Grid and
// RandomGeometric. Panics if id < 1.
func WithFirstID(id int) BuilderOption {
	if id < 1 {
		panic("builder: WithFirstID(id<1)")
	}
	return func(c *builderConfig) {
		c.firstID = id
	}
}

// WithExtent sets the side of the square RandomGeometric samples from.
// Panics if e <= 0.
func WithExtent(e float64) BuilderOption {
	if !(e > 0) {
		panic("builder: WithExtent(e<=0)")
	}
	return func(c *builderConfig) {
		c.extent = e
	}
}
