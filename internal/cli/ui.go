package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// Board colors, one per cell state.
var (
	cellEmpty   = lipgloss.Color("255") // white
	cellOpen    = lipgloss.Color("34")  // green
	cellClosed  = lipgloss.Color("160") // red
	cellBarrier = lipgloss.Color("16")  // black
	cellStart   = lipgloss.Color("208") // orange
	cellEnd     = lipgloss.Color("44")  // turquoise
	cellPath    = lipgloss.Color("93")  // purple
	cellCursor  = lipgloss.Color("226") // yellow
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for error messages.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

var stateStyles = map[grid.State]lipgloss.Style{
	grid.Empty:   lipgloss.NewStyle().Background(cellEmpty),
	grid.Open:    lipgloss.NewStyle().Background(cellOpen),
	grid.Closed:  lipgloss.NewStyle().Background(cellClosed),
	grid.Barrier: lipgloss.NewStyle().Background(cellBarrier),
	grid.Start:   lipgloss.NewStyle().Background(cellStart),
	grid.End:     lipgloss.NewStyle().Background(cellEnd),
	grid.Path:    lipgloss.NewStyle().Background(cellPath),
}

var styleCursor = lipgloss.NewStyle().Background(cellCursor)

// =============================================================================
// Board Rendering
// =============================================================================

// boardView draws a rows×rows board from a row-major state slice.
// Plain mode writes one glyph per cell; colored mode paints two-column
// blocks. cursor, when in bounds, is highlighted in colored mode and shown
// as '@' in plain mode.
type boardView struct {
	rows   int
	plain  bool
	cursor grid.Position
}

func (v boardView) render(states []grid.State) string {
	var b strings.Builder
	for r := 0; r < v.rows; r++ {
		for c := 0; c < v.rows; c++ {
			s := states[r*v.rows+c]
			here := grid.Pos(r, c) == v.cursor
			switch {
			case v.plain && here:
				b.WriteByte('@')
			case v.plain:
				b.WriteRune(s.Glyph())
			case here:
				b.WriteString(styleCursor.Render("  "))
			default:
				b.WriteString(stateStyles[s].Render("  "))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// noCursor is outside every board.
var noCursor = grid.Pos(-1, -1)

// =============================================================================
// Status Output
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
)

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(10)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printStatus prints a one-line outcome with an icon.
func printStatus(w io.Writer, ok bool, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if ok {
		fmt.Fprintln(w, StyleSuccess.Render(iconSuccess)+" "+msg)
		return
	}
	fmt.Fprintln(w, StyleWarning.Render(iconWarning)+" "+msg)
}
