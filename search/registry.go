package search

import (
	"fmt"
	"strings"
)

// Strategy is the driver configuration a method name resolves to.
//
//   - Informed strategies rank by a heuristic aimed at Problem.Goal and stop
//     only when that node is popped.
//   - Uninformed strategies stop at the first popped node in
//     Problem.Destinations.
//   - TieByHeuristic breaks equal-cost ties with h when a designated goal
//     is available (CUS1).
//   - Weight multiplies h in the priority key of OrderWeighted.
type Strategy struct {
	Name           string
	Ordering       Ordering
	Informed       bool
	TieByHeuristic bool
	Weight         float64
}

// DefaultWeight is the heuristic weight of CUS2.
const DefaultWeight = 1.5

// canonical names in display order
var methodOrder = []string{"DFS", "BFS", "GBFS", "A*", "CUS1", "CUS2"}

var registry = map[string]Strategy{
	"DFS":  {Name: "DFS", Ordering: OrderStack},
	"BFS":  {Name: "BFS", Ordering: OrderQueue},
	"GBFS": {Name: "GBFS", Ordering: OrderHeuristic, Informed: true, Weight: 1},
	"A*":   {Name: "A*", Ordering: OrderCostPlusHeuristic, Informed: true, Weight: 1},
	"CUS1": {Name: "CUS1", Ordering: OrderCost, TieByHeuristic: true},
	"CUS2": {Name: "CUS2", Ordering: OrderWeighted, Informed: true, Weight: DefaultWeight},
}

var aliases = map[string]string{
	"AS": "A*",
}

// Lookup resolves a case-insensitive method name. Unknown names fail with
// ErrUnknownMethod.
func Lookup(name string) (Strategy, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	s, ok := registry[key]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}

	return s, nil
}

// Methods lists the canonical method names in a stable order.
func Methods() []string {
	out := make([]string, len(methodOrder))
	copy(out, methodOrder)

	return out
}

// Aliases returns alternative spellings accepted by Lookup, keyed by alias.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}

	return out
}
