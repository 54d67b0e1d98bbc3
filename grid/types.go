// Package grid defines the cell states, positions and cell type
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row")
	// ErrNegativeWidth indicates a negative pixel width.
	ErrNegativeWidth = errors.New("grid: pixel width must be non-negative")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrBadLayout indicates a text layout that cannot be parsed.
	ErrBadLayout = errors.New("grid: malformed layout")
)

// State tags a cell. The set is flat: any state may follow any other,
// legality is decided by the caller.
type State uint8

const (
	// Empty is a free, unexplored cell.
	Empty State = iota
	// Open marks a cell waiting in a search frontier.
	Open
	// Closed marks a cell a search has finished processing.
	Closed
	// Barrier marks an impassable cell.
	Barrier
	// Start marks the search origin.
	Start
	// End marks the search target.
	End
	// Path marks a cell on the reconstructed route.
	Path
)

var stateNames = [...]string{"empty", "open", "closed", "barrier", "start", "end", "path"}

// stateGlyphs is indexed by State; see Glyph.
var stateGlyphs = [...]rune{'.', 'o', 'x', '#', 'S', 'E', '*'}

// String returns the lower-case state name.
func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Glyph returns the single rune used to draw s in text layouts.
func (s State) Glyph() rune {
	if int(s) < len(stateGlyphs) {
		return stateGlyphs[s]
	}
	return '?'
}

// StateFromGlyph is the inverse of Glyph.
func StateFromGlyph(r rune) (State, bool) {
	for i, g := range stateGlyphs {
		if g == r {
			return State(i), true
		}
	}
	return Empty, false
}

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row int `json:"row" toml:"row"`
	Col int `json:"col" toml:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String formats p as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Adjacent reports whether p and q share an edge (4-connectivity).
func (p Position) Adjacent(q Position) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Cell is a single node of the grid graph. Its position never changes;
// its state and neighbor list are mutable.
type Cell struct {
	pos       Position
	state     State
	size      int
	neighbors []Position
}

// Position returns the cell's coordinates.
func (c *Cell) Position() Position { return c.pos }

// Row returns the cell's row.
func (c *Cell) Row() int { return c.pos.Row }

// Col returns the cell's column.
func (c *Cell) Col() int { return c.pos.Col }

// Size returns the cell's edge length in pixels.
func (c *Cell) Size() int { return c.size }

// State returns the cell's current tag.
func (c *Cell) State() State { return c.state }

// SetState assigns s. No transition rules are enforced.
func (c *Cell) SetState(s State) { c.state = s }

// Reset sets the cell back to Empty.
func (c *Cell) Reset() { c.state = Empty }

// Neighbors returns the adjacent non-Barrier positions computed by the
// last Grid.RefreshNeighbors, in up, right, down, left order.
// The slice is shared; callers must not modify it.
func (c *Cell) Neighbors() []Position { return c.neighbors }

func (c *Cell) IsEmpty() bool   { return c.state == Empty }
func (c *Cell) IsOpen() bool    { return c.state == Open }
func (c *Cell) IsClosed() bool  { return c.state == Closed }
func (c *Cell) IsBarrier() bool { return c.state == Barrier }
func (c *Cell) IsStart() bool   { return c.state == Start }
func (c *Cell) IsEnd() bool     { return c.state == End }
func (c *Cell) IsPath() bool    { return c.state == Path }
