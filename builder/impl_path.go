// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// impl_path.go - directed path P_n along the x-axis.

package builder

import (
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

const minPathNodes = 2

// Path builds n nodes at (0,0), (1,0), ... with forward edges i→i+1 of cost
// costScale. IDs start at cfg.firstID.
// Complexity: O(n) nodes + O(n-1) edges.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Path"
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < %d: %w", method, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addNode(method, g, core.NodeID(cfg.firstID+i), float64(i), 0); err != nil {
				return err
			}
		}
		for i := 0; i < n-1; i++ {
			from, to := core.NodeID(cfg.firstID+i), core.NodeID(cfg.firstID+i+1)
			if err := addEdge(method, g, from, to, cfg.costScale); err != nil {
				return err
			}
		}

		return nil
	}
}
