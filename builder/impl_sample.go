// SPDX-License-Identifier: MIT
// Package: searchlab/builder
//
// impl_sample.go - the six-node course graph.

package builder

import "github.com/katalvlaran/searchlab/core"

// SampleOrigin is the origin node of the Sample problem.
const SampleOrigin core.NodeID = 2

// SampleDestinations returns the destinations of the Sample problem; the
// first one is the designated goal.
func SampleDestinations() []core.NodeID { return []core.NodeID{5, 4} }

var sampleNodes = []core.Node{
	{ID: 1, Point: core.Point{X: 4, Y: 1}},
	{ID: 2, Point: core.Point{X: 2, Y: 2}},
	{ID: 3, Point: core.Point{X: 4, Y: 4}},
	{ID: 4, Point: core.Point{X: 6, Y: 3}},
	{ID: 5, Point: core.Point{X: 5, Y: 6}},
	{ID: 6, Point: core.Point{X: 7, Y: 5}},
}

var sampleEdges = []core.Edge{
	{From: 2, To: 1, Cost: 4}, {From: 3, To: 1, Cost: 5},
	{From: 1, To: 3, Cost: 5}, {From: 2, To: 3, Cost: 4},
	{From: 3, To: 2, Cost: 5}, {From: 4, To: 1, Cost: 6},
	{From: 1, To: 4, Cost: 6}, {From: 4, To: 3, Cost: 5},
	{From: 3, To: 5, Cost: 6}, {From: 5, To: 3, Cost: 6},
	{From: 4, To: 5, Cost: 7}, {From: 5, To: 4, Cost: 8},
	{From: 6, To: 3, Cost: 7}, {From: 3, To: 6, Cost: 7},
}

// Sample adds the six-node course graph. Coordinates and costs are fixed;
// cfg.costScale and cfg.firstID do not apply.
func Sample() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		const method = "Sample"
		for _, n := range sampleNodes {
			if err := addNode(method, g, n.ID, n.Point.X, n.Point.Y); err != nil {
				return err
			}
		}
		for _, e := range sampleEdges {
			if err := addEdge(method, g, e.From, e.To, e.Cost); err != nil {
				return err
			}
		}

		return nil
	}
}
