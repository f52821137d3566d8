package search

import (
	"container/heap"
	"fmt"
)

// Ordering names a frontier pop policy.
type Ordering int

const (
	// OrderStack pops the most recently pushed entry (DFS).
	OrderStack Ordering = iota
	// OrderQueue pops the earliest pushed entry (BFS).
	OrderQueue
	// OrderCost pops the minimum g (uniform cost, CUS1).
	OrderCost
	// OrderHeuristic pops the minimum h (GBFS).
	OrderHeuristic
	// OrderCostPlusHeuristic pops the minimum g + h (A*).
	OrderCostPlusHeuristic
	// OrderWeighted pops the minimum g + w·h (weighted A*, CUS2).
	OrderWeighted
)

// String returns the policy name.
func (o Ordering) String() string {
	switch o {
	case OrderStack:
		return "stack"
	case OrderQueue:
		return "queue"
	case OrderCost:
		return "cost"
	case OrderHeuristic:
		return "heuristic"
	case OrderCostPlusHeuristic:
		return "cost+heuristic"
	case OrderWeighted:
		return "weighted cost+heuristic"
	default:
		return fmt.Sprintf("ordering(%d)", int(o))
	}
}

// Frontier is an ordered container of pending-exploration entries.
type Frontier interface {
	// Push adds an entry.
	Push(e Entry)
	// Pop removes and returns the next entry per policy; ok is false when empty.
	Pop() (e Entry, ok bool)
	// Len returns the number of pending entries.
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
}

// NewFrontier returns the frontier implementing o.
//
// Priority frontiers compare Entry.F, which the driver fills with the
// policy's key (g, h, g+h or g+w·h). Ties fall back to Entry.H when
// tieByHeuristic is set, then to ascending node ID, then to insertion order
// (Entry.Seq), so the pop order is fully determined for any fixed input.
func NewFrontier(o Ordering, tieByHeuristic bool) Frontier {
	switch o {
	case OrderStack:
		return &stack{}
	case OrderQueue:
		return &queue{}
	default:
		return &priority{pq: entryPQ{tieByH: tieByHeuristic}}
	}
}

// stack is a LIFO frontier.
type stack struct {
	items []Entry
}

func (s *stack) Push(e Entry) { s.items = append(s.items, e) }

func (s *stack) Pop() (Entry, bool) {
	n := len(s.items)
	if n == 0 {
		return Entry{}, false
	}
	e := s.items[n-1]
	s.items = s.items[:n-1]

	return e, true
}

func (s *stack) Len() int      { return len(s.items) }
func (s *stack) IsEmpty() bool { return len(s.items) == 0 }

// queue is a FIFO frontier.
type queue struct {
	items []Entry
	head  int
}

func (q *queue) Push(e Entry) { q.items = append(q.items, e) }

func (q *queue) Pop() (Entry, bool) {
	if q.head >= len(q.items) {
		return Entry{}, false
	}
	e := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 32 && q.head*2 > len(q.items) {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}

	return e, true
}

func (q *queue) Len() int      { return len(q.items) - q.head }
func (q *queue) IsEmpty() bool { return q.Len() == 0 }

// priority is a min-heap frontier with lazy deletion: stale entries stay in
// the heap and are discarded by the driver when popped.
type priority struct {
	pq entryPQ
}

func (p *priority) Push(e Entry) { heap.Push(&p.pq, e) }

func (p *priority) Pop() (Entry, bool) {
	if p.pq.Len() == 0 {
		return Entry{}, false
	}

	return heap.Pop(&p.pq).(Entry), true
}

func (p *priority) Len() int      { return p.pq.Len() }
func (p *priority) IsEmpty() bool { return p.pq.Len() == 0 }

// entryPQ implements heap.Interface ordered by (F, [H], Node, Seq) ascending.
type entryPQ struct {
	items  []Entry
	tieByH bool
}

// Len returns the number of items in the heap.
func (pq entryPQ) Len() int { return len(pq.items) }

// Less defines the comparison: smaller key → higher priority.
func (pq entryPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.F != b.F {
		return a.F < b.F
	}
	if pq.tieByH && a.H != b.H {
		return a.H < b.H
	}
	if a.Node != b.Node {
		return a.Node < b.Node
	}

	return a.Seq < b.Seq
}

// Swap swaps two elements in the heap.
func (pq entryPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *entryPQ) Push(x interface{}) { pq.items = append(pq.items, x.(Entry)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *entryPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
