package grid

import "fmt"

// Place applies the primary-button editing rule at p and returns the new state:
//
//  1. No Start yet and p is not the End cell → p becomes Start.
//  2. Otherwise no End yet and p is not the Start cell → p becomes End.
//  3. Otherwise, if p is neither Start nor End → p becomes Barrier.
//
// Start and End therefore stay unique and never share a cell.
// Returns ErrOutOfBounds if p is outside the grid.
func (g *Grid) Place(p Position) (State, error) {
	c := g.Cell(p)
	if c == nil {
		return Empty, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	_, hasStart := g.Start()
	_, hasEnd := g.End()
	switch {
	case !hasStart && !c.IsEnd():
		c.SetState(Start)
	case !hasEnd && !c.IsStart():
		c.SetState(End)
	case !c.IsStart() && !c.IsEnd():
		c.SetState(Barrier)
	}

	return c.state, nil
}

// Erase applies the secondary-button rule: the cell at p becomes Empty,
// releasing the Start or End role if it held one.
func (g *Grid) Erase(p Position) error {
	c := g.Cell(p)
	if c == nil {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	c.Reset()
	return nil
}

// ClearSearch returns Open, Closed and Path cells to Empty and keeps
// Start, End and Barrier, so the same layout can be searched again.
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		switch g.cells[i].state {
		case Open, Closed, Path:
			g.cells[i].Reset()
		}
	}
}

// PixelToPosition maps a pixel coordinate on a board pixelWidth wide to
// the cell under it. x runs along columns, y along rows. ok is false when
// the point falls outside the grid.
func (g *Grid) PixelToPosition(x, y, pixelWidth int) (p Position, ok bool) {
	gap := pixelWidth / g.rows
	if gap <= 0 || x < 0 || y < 0 {
		return Position{}, false
	}
	p = Position{Row: y / gap, Col: x / gap}
	return p, g.InBounds(p)
}
