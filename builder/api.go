// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories are implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures known to be valid. It panics on error
// and is meant for tests, examples and benchmarks only.
func MustBuild(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(gopts, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}

// addNode and addEdge tag core failures with the constructor name and
// ErrConstructFailed while keeping the core sentinel reachable.
func addNode(method string, g *core.Graph, id core.NodeID, x, y float64) error {
	if err := g.AddNode(id, x, y); err != nil {
		return fmt.Errorf("%s: node %d: %w: %w", method, id, ErrConstructFailed, err)
	}

	return nil
}

func addEdge(method string, g *core.Graph, from, to core.NodeID, cost float64) error {
	if err := g.AddEdge(from, to, cost); err != nil {
		return fmt.Errorf("%s: edge %d->%d: %w: %w", method, from, to, ErrConstructFailed, err)
	}

	return nil
}
