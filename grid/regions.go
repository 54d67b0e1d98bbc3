package grid

import "github.com/zyedidia/generic/mapset"

// Regions finds every contiguous region of non-Barrier cells under
// 4-connectivity. Regions are returned in row-major order of their first
// cell; cells inside a region are in breadth-first discovery order.
//
// Regions reads cell states directly and does not depend on RefreshNeighbors.
//
// Time:   O(rows²).
// Memory: O(rows²) for the seen set and output.
func (g *Grid) Regions() [][]Position {
	seen := mapset.New[int]()
	var regions [][]Position

	for i0 := range g.cells {
		if g.cells[i0].state == Barrier || seen.Has(i0) {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen.Put(i0)
		var region []Position

		for qi := 0; qi < len(queue); qi++ {
			u := g.cells[queue[qi]].pos
			region = append(region, u)
			for _, d := range neighborOffsets {
				v := Position{Row: u.Row + d[0], Col: u.Col + d[1]}
				if !g.InBounds(v) {
					continue
				}
				vi := g.Index(v)
				if g.cells[vi].state == Barrier || seen.Has(vi) {
					continue
				}
				seen.Put(vi)
				queue = append(queue, vi)
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether a and b lie in the same non-Barrier region.
// A Barrier or out-of-bounds endpoint is connected to nothing.
// Complexity: O(rows²) worst case; stops as soon as b is reached.
func (g *Grid) Connected(a, b Position) bool {
	if g.State(a) == Barrier || g.State(b) == Barrier {
		return false
	}
	if a == b {
		return true
	}
	target := g.Index(b)
	seen := mapset.New[int]()
	queue := []int{g.Index(a)}
	seen.Put(queue[0])
	for qi := 0; qi < len(queue); qi++ {
		u := g.cells[queue[qi]].pos
		for _, d := range neighborOffsets {
			v := Position{Row: u.Row + d[0], Col: u.Col + d[1]}
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			if g.cells[vi].state == Barrier || seen.Has(vi) {
				continue
			}
			if vi == target {
				return true
			}
			seen.Put(vi)
			queue = append(queue, vi)
		}
	}
	return false
}
