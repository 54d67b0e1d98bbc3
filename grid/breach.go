package grid

import (
	"container/list"
	"fmt"
)

// Breach finds the fewest Barrier cells that must be cleared so a and b
// become connected, and returns them in order along one such route.
// An empty result means a and b are already connected.
//
// Behavior:
//  1. Validate both endpoints.
//  2. 0-1 BFS from a:
//     • stepping onto a non-Barrier cell costs 0 (pushed to the front)
//     • stepping onto a Barrier costs 1 (pushed to the back)
//  3. Stop when b is popped; walk predecessors back to a.
//
// An endpoint that is itself a Barrier is part of the result.
//
// Complexity: O(rows²) time and memory; every cell is settled at most twice.
func (g *Grid) Breach(a, b Position) ([]Position, error) {
	if !g.InBounds(a) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, a)
	}
	if !g.InBounds(b) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, b)
	}

	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}
	cost := func(i int) int {
		if g.cells[i].state == Barrier {
			return 1
		}
		return 0
	}

	src, dst := g.Index(a), g.Index(b)
	dist[src] = cost(src)
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		up := g.cells[u].pos
		for _, d := range neighborOffsets {
			vp := Position{Row: up.Row + d[0], Col: up.Col + d[1]}
			if !g.InBounds(vp) {
				continue
			}
			v := g.Index(vp)
			step := cost(v)
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	var out []Position
	for at := dst; at >= 0; at = prev[at] {
		if g.cells[at].state == Barrier {
			out = append(out, g.cells[at].pos)
		}
	}
	// reverse to a→b order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
