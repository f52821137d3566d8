package search

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/searchlab/core"
	"github.com/katalvlaran/searchlab/heuristic"
)

// Sentinel errors for search execution.
var (
	// ErrNilGraph is returned if the problem carries a nil graph pointer.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownMethod is returned when a method name is not in the registry.
	// It is a configuration error; the wrapped message names the method.
	ErrUnknownMethod = errors.New("search: unsupported method")

	// ErrNoDesignatedGoal is returned when an informed strategy is run
	// without a single designated goal to aim the heuristic at.
	ErrNoDesignatedGoal = errors.New("search: informed strategy needs a designated goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrIndexOutOfRange is returned by Trace lookups with a bad visit index.
	ErrIndexOutOfRange = errors.New("search: trace index out of range")
)

// State is the lifecycle state of one search run.
type State int

const (
	// StateReady: frontier seeded with the origin, nothing popped yet.
	StateReady State = iota
	// StateRunning: the pop/expand loop is active.
	StateRunning
	// StateSucceeded: a goal entry was popped and the path rebuilt.
	StateSucceeded
	// StateExhausted: the frontier ran dry or the expansion limit was hit.
	StateExhausted
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText lets State appear by name in JSON and YAML exports.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Problem is one search request over a read-only graph.
//
// Destinations is the set of acceptable end nodes used by the uninformed
// goal test. Goal is the single designated goal used by informed strategies
// both for heuristic evaluation and for the goal test; by convention it is
// the first destination, but the caller must set it explicitly.
type Problem struct {
	Graph        *core.Graph
	Origin       core.NodeID
	Destinations []core.NodeID
	Goal         core.NodeID
}

// NewProblem builds a Problem whose designated goal is the first destination.
func NewProblem(g *core.Graph, origin core.NodeID, destinations ...core.NodeID) Problem {
	p := Problem{Graph: g, Origin: origin, Destinations: destinations}
	if len(destinations) > 0 {
		p.Goal = destinations[0]
	}

	return p
}

// IsDestination reports whether id is one of the acceptable destinations.
func (p Problem) IsDestination(id core.NodeID) bool {
	for _, d := range p.Destinations {
		if d == id {
			return true
		}
	}

	return false
}

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative limit), it is recorded internally
// and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search run.
type Options struct {
	// Ctx allows cancellation; checked once per pop.
	Ctx context.Context

	// MaxExpansions, if > 0, caps the number of trace entries. Reaching the
	// cap ends the run Exhausted with Result.Truncated set.
	MaxExpansions int

	// Heuristic estimates remaining cost to the designated goal.
	Heuristic heuristic.Func

	// Weight overrides the heuristic weight of weighted strategies (CUS2).
	// Zero keeps the registry default.
	Weight float64

	// OnVisit is called for every trace entry right after it is recorded.
	// Returning an error aborts the search with that error.
	OnVisit func(visit int, e Entry) error

	// Logger receives debug records for every visit.
	Logger *zap.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - Euclidean heuristic
//   - registry weights
//   - no-op visit hook and logger
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Heuristic:     heuristic.Euclidean,
		Weight:        0,
		OnVisit:       func(int, Entry) error { return nil },
		Logger:        zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions limits how many nodes may be visited.
//
//	n > 0: at most n trace entries, then Exhausted with Truncated=true
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithHeuristic replaces the Euclidean estimate.
func WithHeuristic(fn heuristic.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.Heuristic = fn
		}
	}
}

// WithWeight overrides the heuristic weight used by weighted strategies.
// w must be finite and at least 1.
func WithWeight(w float64) Option {
	return func(o *Options) {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 1 {
			o.err = fmt.Errorf("%w: Weight must be a finite value >= 1 (%v)", ErrOptionViolation, w)
			return
		}
		o.Weight = w
	}
}

// WithOnVisit registers a callback run for every visit (1-based order).
func WithOnVisit(fn func(visit int, e Entry) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger routes debug records to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search run:
//   - Goal: destination actually reached (core.NoNode if none).
//   - Path: origin → goal node sequence (empty if none).
//   - Cost: sum of edge costs along Path.
//   - Expanded: number of visited nodes, equal to Trace.Len().
//   - Truncated: the expansion limit stopped the run early.
type Result struct {
	Method    string        `json:"method" yaml:"method"`
	State     State         `json:"state" yaml:"state"`
	Goal      core.NodeID   `json:"goal" yaml:"goal"`
	Path      []core.NodeID `json:"path" yaml:"path"`
	Cost      float64       `json:"cost" yaml:"cost"`
	Expanded  int           `json:"expanded" yaml:"expanded"`
	Truncated bool          `json:"truncated" yaml:"truncated"`
	Trace     *Trace        `json:"trace" yaml:"trace"`
}

// Found reports whether a goal was reached.
func (r *Result) Found() bool {
	return r.State == StateSucceeded
}

// PathString renders Path as "2 -> 3 -> 5".
func (r *Result) PathString() string {
	parts := make([]string, len(r.Path))
	for i, id := range r.Path {
		parts[i] = fmt.Sprint(int(id))
	}

	return strings.Join(parts, " -> ")
}
