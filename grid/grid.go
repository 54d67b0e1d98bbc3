// Package grid models a square board of cells as an unweighted,
// 4-connected graph. It supports:
//
//   - Arena storage: one flat []Cell, addressed by (row, col) or row-major index
//   - On-demand adjacency via RefreshNeighbors, with staleness detection
//   - Editor helpers mirroring point-and-click grid editing
//   - Region (connected component) analysis of non-Barrier cells
//
// Barrier cells are impassable; every other state is traversable.
package grid

// neighborOffsets lists {dRow, dCol} in up, right, down, left order.
// Search strategies observe this order, so it must not change.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a rows×rows arrangement of cells. It exclusively owns its cells;
// everything outside the package refers to them by Position.
// A Grid is not safe for concurrent use.
type Grid struct {
	rows     int
	cellSize int
	cells    []Cell

	// barriers is the Barrier layout seen by the last RefreshNeighbors;
	// nil until the first refresh.
	barriers []bool
}

// New allocates a rows×rows grid of Empty cells, each pixelWidth/rows
// pixels wide. No adjacency is computed until RefreshNeighbors is called.
// Returns ErrEmptyGrid if rows <= 0 and ErrNegativeWidth if pixelWidth < 0.
// Complexity: O(rows²) time and memory.
func New(rows, pixelWidth int) (*Grid, error) {
	if rows <= 0 {
		return nil, ErrEmptyGrid
	}
	if pixelWidth < 0 {
		return nil, ErrNegativeWidth
	}
	gap := pixelWidth / rows
	g := &Grid{
		rows:     rows,
		cellSize: gap,
		cells:    make([]Cell, rows*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < rows; c++ {
			g.cells[r*rows+c] = Cell{pos: Position{Row: r, Col: c}, size: gap}
		}
	}

	return g, nil
}

// Rows returns the number of rows (equal to the number of columns).
func (g *Grid) Rows() int { return g.rows }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// CellSize returns the pixel size shared by every cell.
func (g *Grid) CellSize() int { return g.cellSize }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.rows
}

// Index maps p to its row-major index: Row*rows + Col.
// The result is meaningless when p is out of bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.rows + p.Col
}

// Position converts a row-major index back to a Position.
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.rows, Col: idx % g.rows}
}

// Cell returns the cell at p, or nil if p is out of bounds.
func (g *Grid) Cell(p Position) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.Index(p)]
}

// At returns the cell at a row-major index.
func (g *Grid) At(idx int) *Cell {
	return &g.cells[idx]
}

// State returns the state at p, or Barrier when p is out of bounds.
func (g *Grid) State(p Position) State {
	if c := g.Cell(p); c != nil {
		return c.state
	}
	return Barrier
}

// SetState assigns s to the cell at p.
// Returns ErrOutOfBounds if p is outside the grid.
func (g *Grid) SetState(p Position, s State) error {
	c := g.Cell(p)
	if c == nil {
		return ErrOutOfBounds
	}
	c.SetState(s)
	return nil
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// RefreshNeighbors recomputes the neighbor list of every cell: the in-bounds,
// non-Barrier cells above, right, below and left of it, in that order.
// It must run before a search and again after any change to or from Barrier.
// Complexity: O(rows²) time, O(rows²) memory.
func (g *Grid) RefreshNeighbors() {
	if g.barriers == nil {
		g.barriers = make([]bool, len(g.cells))
	}
	for i := range g.cells {
		g.barriers[i] = g.cells[i].state == Barrier
	}
	for i := range g.cells {
		c := &g.cells[i]
		c.neighbors = c.neighbors[:0]
		for _, d := range neighborOffsets {
			n := Position{Row: c.pos.Row + d[0], Col: c.pos.Col + d[1]}
			if !g.InBounds(n) || g.barriers[g.Index(n)] {
				continue
			}
			c.neighbors = append(c.neighbors, n)
		}
	}
}

// Stale reports whether adjacency is out of date: RefreshNeighbors was
// never called, or some cell moved to or from Barrier since.
// Complexity: O(rows²).
func (g *Grid) Stale() bool {
	if g.barriers == nil {
		return true
	}
	for i := range g.cells {
		if (g.cells[i].state == Barrier) != g.barriers[i] {
			return true
		}
	}
	return false
}

// Neighbors returns the precomputed neighbors of p, or nil if p is out of bounds.
func (g *Grid) Neighbors(p Position) []Position {
	if c := g.Cell(p); c != nil {
		return c.neighbors
	}
	return nil
}

// Start returns the position of the Start cell, if any.
func (g *Grid) Start() (Position, bool) {
	return g.find(Start)
}

// End returns the position of the End cell, if any.
func (g *Grid) End() (Position, bool) {
	return g.find(End)
}

func (g *Grid) find(s State) (Position, bool) {
	for i := range g.cells {
		if g.cells[i].state == s {
			return g.cells[i].pos, true
		}
	}
	return Position{}, false
}

// Count returns how many cells are in state s.
func (g *Grid) Count(s State) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].state == s {
			n++
		}
	}
	return n
}

// Reset sets every cell to Empty. Adjacency is left untouched and
// therefore becomes stale if any Barrier was cleared.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].Reset()
	}
}

// Snapshot copies every cell state in row-major order.
func (g *Grid) Snapshot() []State {
	out := make([]State, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].state
	}
	return out
}

// Barriers returns the positions of all Barrier cells in row-major order.
func (g *Grid) Barriers() []Position {
	var out []Position
	for i := range g.cells {
		if g.cells[i].state == Barrier {
			out = append(out, g.cells[i].pos)
		}
	}
	return out
}
