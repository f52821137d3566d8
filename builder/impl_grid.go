// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// impl_grid.go - rows×cols 4-neighbourhood grid.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

// Grid builds a rows×cols grid with unit spacing. Node (r, c) has ID
// firstID + r*cols + c and sits at (c, r). Every horizontal and vertical
// neighbour pair is linked in both directions with cost costScale.
//
// Emission order: nodes row-major; then for each node in row-major order
// its right arc pair, then its down arc pair.
// Complexity: O(R*C) nodes + O(4*R*C) arcs.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Grid"
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", method, rows, cols, ErrTooFewVertices)
		}
		id := func(r, c int) core.NodeID { return core.NodeID(cfg.firstID + r*cols + c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addNode(method, g, id(r, c), float64(c), float64(r)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(method, g, id(r, c), id(r, c+1), cfg.costScale); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(method, g, id(r, c), id(r+1, c), cfg.costScale); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// link adds a→b and b→a with the same cost.
func link(method string, g *core.Graph, a, b core.NodeID, cost float64) error {
	if err := addEdge(method, g, a, b, cost); err != nil {
		return err
	}

	return addEdge(method, g, b, a, cost)
}
