package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse builds a grid from a square text drawing, one line per row and one
// glyph per cell (see State.Glyph). Blank lines and surrounding spaces are
// ignored. Every state glyph is accepted, so the output of String parses back.
// The grid gets pixel width equal to its row count and refreshed adjacency.
//
// Returns ErrBadLayout for an empty drawing, ragged or non-square rows,
// unknown glyphs, or more than one Start or End.
func Parse(layout string) (*Grid, error) {
	var lines []string
	for _, ln := range strings.Split(layout, "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrBadLayout)
	}
	rows := len(lines)
	g, err := New(rows, rows)
	if err != nil {
		return nil, err
	}

	starts, ends := 0, 0
	for r, ln := range lines {
		if n := utf8.RuneCountInString(ln); n != rows {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadLayout, r, n, rows)
		}
		c := 0
		for _, ch := range ln {
			s, ok := StateFromGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at %d,%d", ErrBadLayout, ch, r, c)
			}
			switch s {
			case Start:
				starts++
			case End:
				ends++
			}
			g.cells[r*rows+c].state = s
			c++
		}
	}
	if starts > 1 || ends > 1 {
		return nil, fmt.Errorf("%w: %d start and %d end cells", ErrBadLayout, starts, ends)
	}
	g.RefreshNeighbors()

	return g, nil
}

// MustParse is like Parse but panics on error. Intended for tests and examples.
func MustParse(layout string) *Grid {
	g, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return g
}

// String draws the grid with one glyph per cell and a newline after each row.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.rows)
	for i := range g.cells {
		b.WriteRune(g.cells[i].state.Glyph())
		if (i+1)%g.rows == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
