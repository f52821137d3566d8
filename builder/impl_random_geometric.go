// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// impl_random_geometric.go - seeded random points with distance costs.

package builder

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/searchlab/core"
)

const minGeometricNodes = 1

// RandomGeometric samples n points uniformly from [0, extent)² and adds the
// arc u→v (u ≠ v) with probability p. The cost of an arc is the Euclidean
// distance between its endpoints times costScale, so it never undercuts the
// straight-line estimate.
//
// Requires a seeded RNG (WithSeed or WithRand). Points are drawn first in ID
// order, then ordered pairs are visited row-major, one Float64 draw each.
// Complexity: O(n) nodes + O(n²) draws.
func RandomGeometric(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "RandomGeometric"
		if n < minGeometricNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", method, n, minGeometricNodes, ErrTooFewVertices)
		}
		if !(p >= 0 && p <= 1) {
			return fmt.Errorf("%s: p=%v: %w", method, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
		}

		pts := make([]orb.Point, n)
		for i := range pts {
			pts[i] = orb.Point{cfg.rng.Float64() * cfg.extent, cfg.rng.Float64() * cfg.extent}
			if err := addNode(method, g, core.NodeID(cfg.firstID+i), pts[i][0], pts[i][1]); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				cost := planar.Distance(pts[i], pts[j]) * cfg.costScale
				if err := addEdge(method, g, core.NodeID(cfg.firstID+i), core.NodeID(cfg.firstID+j), cost); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
