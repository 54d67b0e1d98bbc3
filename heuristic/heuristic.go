// Package heuristic provides distance estimates between grid positions
// for informed search.
//
// Manhattan is admissible and consistent on a 4-connected grid with unit
// edge costs, which is what A* needs to return optimal paths.
package heuristic

import "github.com/katalvlaran/gridpath/grid"

// Func estimates the remaining cost from a to b.
// It must be pure and must not depend on grid state.
type Func func(a, b grid.Position) int

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// Complexity: O(1).
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Zero always returns 0. A* with Zero degrades to uniform-cost search.
func Zero(_, _ grid.Position) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
