package search

import (
	"github.com/zyedidia/generic/mapset"
)

// dfs walks a LIFO frontier without popping on examination: the top cell
// stays on the stack, and is re-examined on later iterations, until it has no
// unvisited neighbor left. The trail is the chain of cells from start to the
// cell being examined; it doubles as the predecessor record.
//
// Time:   O(rows²), each cell is pushed at most once per neighbor.
// Memory: O(rows²) for stack, trail and visited set.
func (r *runner) dfs() Outcome {
	g := r.g
	endIdx := g.Index(r.end)

	stack := []int{g.Index(r.start)}
	trail := make([]int, 0, g.Len())
	visited := mapset.New[int]()

	for len(stack) > 0 {
		// 1. Cancellation poll before touching the frontier
		if r.cancelled() {
			return Cancelled
		}

		// 2. Peek
		top := stack[len(stack)-1]
		switch {
		case !visited.Has(top):
			visited.Put(top)
			trail = append(trail, top)
		case len(trail) == 0 || trail[len(trail)-1] != top:
			// duplicate entry for a cell finished on another branch
			stack = stack[:len(stack)-1]
			continue
		}
		cur := g.Position(top)

		// 3. Goal test
		if top == endIdx {
			r.trace(trail)
			return Found
		}

		// 4. Grow the frontier, or backtrack on a dead end
		pushed := false
		for _, n := range g.Neighbors(cur) {
			ni := g.Index(n)
			if visited.Has(ni) {
				continue
			}
			stack = append(stack, ni)
			r.open(n)
			pushed = true
		}
		if !pushed {
			stack = stack[:len(stack)-1]
			trail = trail[:len(trail)-1]
		}

		// 5. Report and retire
		r.explore(cur)
		r.close(cur)
	}

	return Exhausted
}
