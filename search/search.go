// Package search implements the single traversal routine behind all six
// course strategies (DFS, BFS, GBFS, A*, CUS1, CUS2). Strategies differ only
// in their frontier ordering and in whether a heuristic contributes to the
// priority key; the shared bookkeeping (visited set, trace emission, path
// reconstruction) lives here once.
//
// Complexity:
//
//   - Time:  O((V + E) log E) for priority orderings, O(V + E) for stack/queue.
//   - Space: O(V + E): visited set, trace arena and up to E frontier entries
//     under lazy deletion.
package search

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/searchlab/core"
)

// Run resolves method through the registry and runs it on p.
//
// Returns ErrUnknownMethod for an unrecognized method, ErrNilGraph,
// ErrNoDesignatedGoal for an informed method without p.Goal,
// ErrOptionViolation for bad options, wrapped core lookup errors for
// invalid topology, ctx errors on cancellation, or any OnVisit hook error.
// A disconnected or trivial graph is never an error: it is reported in the
// Result.
func Run(p Problem, method string, opts ...Option) (*Result, error) {
	s, err := Lookup(method)
	if err != nil {
		return nil, err
	}

	return RunStrategy(p, s, opts...)
}

// RunAll runs every method on the same problem, in the given order.
// The graph is shared read-only between runs.
func RunAll(p Problem, methods []string, opts ...Option) ([]*Result, error) {
	out := make([]*Result, 0, len(methods))
	for _, m := range methods {
		res, err := Run(p, m, opts...)
		if err != nil {
			return out, fmt.Errorf("search: %s: %w", m, err)
		}
		out = append(out, res)
	}

	return out, nil
}

// RunStrategy runs an explicit Strategy, bypassing the registry.
func RunStrategy(p Problem, s Strategy, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if p.Graph == nil {
		return nil, ErrNilGraph
	}
	if s.Informed && !p.Goal.Valid() {
		return nil, fmt.Errorf("%w: method %s", ErrNoDesignatedGoal, s.Name)
	}
	if _, err := p.Graph.Coordinates(p.Origin); err != nil {
		return nil, fmt.Errorf("search: origin: %w", err)
	}

	weight := s.Weight
	if s.Ordering == OrderWeighted && o.Weight != 0 {
		weight = o.Weight
	}

	r := &runner{
		g:        p.Graph,
		p:        p,
		strat:    s,
		opts:     o,
		weight:   weight,
		useH:     s.Informed || (s.TieByHeuristic && p.Goal.Valid()),
		frontier: NewFrontier(s.Ordering, s.TieByHeuristic),
		visited:  make(map[core.NodeID]bool, p.Graph.NodeCount()),
		trace:    &Trace{Entries: make([]Entry, 0, p.Graph.NodeCount())},
		log:      o.Logger.With(zap.String("method", s.Name)),
		state:    StateReady,
	}

	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.loop(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g        *core.Graph
	p        Problem
	strat    Strategy
	opts     Options
	weight   float64
	useH     bool
	frontier Frontier
	visited  map[core.NodeID]bool
	trace    *Trace
	seq      uint64
	log      *zap.Logger

	state     State
	goalIdx   int
	truncated bool
}

// init seeds the frontier with the origin (g=0, no parent, depth 0).
func (r *runner) init() error {
	e := Entry{
		Node:        r.p.Origin,
		Parent:      core.NoNode,
		ParentIndex: -1,
		Depth:       0,
		G:           0,
	}
	if err := r.score(&e); err != nil {
		return err
	}
	r.push(e)
	r.goalIdx = -1

	return nil
}

// loop pops until a goal is found, the frontier empties, the expansion
// limit is reached, or an error occurs.
func (r *runner) loop() error {
	r.state = StateRunning
	for {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		e, ok := r.frontier.Pop()
		if !ok {
			r.state = StateExhausted
			return nil
		}
		// stale entry for an already expanded node
		if r.visited[e.Node] {
			continue
		}
		if r.opts.MaxExpansions > 0 && r.trace.Len() >= r.opts.MaxExpansions {
			r.truncated = true
			r.state = StateExhausted
			r.log.Debug("expansion limit reached", zap.Int("limit", r.opts.MaxExpansions))
			return nil
		}

		idx := r.trace.append(e)
		r.log.Debug("visit",
			zap.Int("order", idx+1),
			zap.Int("node", int(e.Node)),
			zap.Int("parent", int(e.Parent)),
			zap.Int("depth", e.Depth),
			zap.Float64("g", e.G),
			zap.Float64("h", e.H),
			zap.Float64("f", e.F),
		)
		if err := r.opts.OnVisit(idx+1, e); err != nil {
			return fmt.Errorf("search: OnVisit error at %d: %w", e.Node, err)
		}

		if r.isGoal(e.Node) {
			r.state = StateSucceeded
			r.goalIdx = idx
			return nil
		}

		r.visited[e.Node] = true
		if err := r.expand(e, idx); err != nil {
			return err
		}
	}
}

// isGoal applies the strategy's goal test.
func (r *runner) isGoal(id core.NodeID) bool {
	if r.strat.Informed {
		return id == r.p.Goal
	}

	return r.p.IsDestination(id)
}

// expand pushes every not-yet-visited neighbor of e in adjacency order.
func (r *runner) expand(e Entry, idx int) error {
	arcs, err := r.g.Neighbors(e.Node)
	if err != nil {
		return fmt.Errorf("search: failed to get neighbors of %d: %w", e.Node, err)
	}
	for _, a := range arcs {
		if r.visited[a.To] {
			continue
		}
		child := Entry{
			Node:        a.To,
			Parent:      e.Node,
			ParentIndex: idx,
			Depth:       e.Depth + 1,
			G:           e.G + a.Cost,
		}
		if err = r.score(&child); err != nil {
			return err
		}
		r.push(child)
	}

	return nil
}

// score fills H and F according to the strategy.
func (r *runner) score(e *Entry) error {
	if r.useH {
		h, err := r.opts.Heuristic(r.g, e.Node, r.p.Goal)
		if err != nil {
			return fmt.Errorf("search: heuristic at %d: %w", e.Node, err)
		}
		e.H = h
	}

	switch r.strat.Ordering {
	case OrderHeuristic:
		e.F = e.H
	case OrderCostPlusHeuristic:
		e.F = e.G + e.H
	case OrderWeighted:
		e.F = e.G + r.weight*e.H
	default:
		e.F = e.G
	}

	return nil
}

// push stamps e with the next insertion sequence number and adds it.
func (r *runner) push(e Entry) {
	r.seq++
	e.Seq = r.seq
	r.frontier.Push(e)
}

// result assembles the Result for the terminal state.
func (r *runner) result() *Result {
	res := &Result{
		Method:    r.strat.Name,
		State:     r.state,
		Goal:      core.NoNode,
		Path:      []core.NodeID{},
		Expanded:  r.trace.Len(),
		Truncated: r.truncated,
		Trace:     r.trace,
	}
	if r.state == StateSucceeded {
		goal := r.trace.Entries[r.goalIdx]
		// goalIdx is a valid slot, PathTo cannot fail here
		res.Path, _ = r.trace.PathTo(r.goalIdx)
		res.Goal = goal.Node
		res.Cost = goal.G
	}
	r.log.Debug("search finished",
		zap.Stringer("state", res.State),
		zap.Int("goal", int(res.Goal)),
		zap.Int("expanded", res.Expanded),
		zap.Bool("truncated", res.Truncated),
	)

	return res
}
