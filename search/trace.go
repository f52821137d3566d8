package search

import (
	"fmt"

	"github.com/katalvlaran/searchlab/core"
)

// Entry is one frontier record. Once popped and recorded in a Trace it is
// also one visit of the exploration tree.
//
//   - Parent is the node this entry was discovered from (core.NoNode for the origin).
//   - ParentIndex is the parent's slot in the Trace arena (-1 for the origin).
//   - G is the accumulated path cost, H the heuristic estimate to the
//     designated goal (0 when unused), F the priority key of the strategy.
//   - Seq is the push counter used as the last tie-break.
type Entry struct {
	Node        core.NodeID `json:"node" yaml:"node"`
	Parent      core.NodeID `json:"parent" yaml:"parent"`
	ParentIndex int         `json:"parent_index" yaml:"parent_index"`
	Depth       int         `json:"depth" yaml:"depth"`
	G           float64     `json:"g" yaml:"g"`
	H           float64     `json:"h" yaml:"h"`
	F           float64     `json:"f" yaml:"f"`
	Seq         uint64      `json:"-" yaml:"-"`
}

// Pair is a (node, parent) tuple of the exploration tree.
type Pair struct {
	Node   core.NodeID `json:"node" yaml:"node"`
	Parent core.NodeID `json:"parent" yaml:"parent"`
}

// Trace is the exploration trace: an arena of entries in pop order. Visit
// #k is Entries[k-1]. Each entry points at its parent's slot by index, and
// that index is always smaller than the entry's own, so every parent chain
// ends at the origin in slot 0.
type Trace struct {
	Entries []Entry `json:"entries" yaml:"entries"`
}

// append records e and returns its slot.
func (t *Trace) append(e Entry) int {
	t.Entries = append(t.Entries, e)

	return len(t.Entries) - 1
}

// Len returns the number of visits.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}

	return len(t.Entries)
}

// At returns the entry stored in slot i.
func (t *Trace) At(i int) (Entry, error) {
	if i < 0 || i >= t.Len() {
		return Entry{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, t.Len())
	}

	return t.Entries[i], nil
}

// Nodes returns the visited nodes in visit order.
func (t *Trace) Nodes() []core.NodeID {
	out := make([]core.NodeID, t.Len())
	for i := range out {
		out[i] = t.Entries[i].Node
	}

	return out
}

// Pairs returns the (node, parent) sequence in visit order, the shape a
// tree renderer consumes.
func (t *Trace) Pairs() []Pair {
	out := make([]Pair, t.Len())
	for i := range out {
		out[i] = Pair{Node: t.Entries[i].Node, Parent: t.Entries[i].Parent}
	}

	return out
}

// IndexOf returns the slot in which id was visited, or -1.
func (t *Trace) IndexOf(id core.NodeID) int {
	for i := 0; i < t.Len(); i++ {
		if t.Entries[i].Node == id {
			return i
		}
	}

	return -1
}

// PathTo walks parent indices from slot i back to the origin and returns the
// node sequence origin → Entries[i].Node.
func (t *Trace) PathTo(i int) ([]core.NodeID, error) {
	if _, err := t.At(i); err != nil {
		return nil, err
	}
	// build reversed path
	var path []core.NodeID
	for cur := i; cur >= 0; cur = t.Entries[cur].ParentIndex {
		path = append(path, t.Entries[cur].Node)
	}
	// reverse to get origin → node
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

// Children returns the slots whose parent is slot i, in visit order.
func (t *Trace) Children(i int) []int {
	var out []int
	for j := i + 1; j < t.Len(); j++ {
		if t.Entries[j].ParentIndex == i {
			out = append(out, j)
		}
	}

	return out
}
