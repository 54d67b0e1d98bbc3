package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

func newTestPlay(t *testing.T, rows int) playModel {
	t.Helper()
	cfg := config.Default()
	cfg.Rows = rows
	cfg.Delay = 0
	ctx := withLogger(context.Background(), newLogger(&bytes.Buffer{}, LogDebug))
	m, err := newPlayModel(ctx, cfg, true)
	require.NoError(t, err)
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends each key and returns the model plus the last command.
func press(m playModel, keys ...string) (playModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyMsg(k))
		m = next.(playModel)
	}
	return m, cmd
}

// drain runs cmd and feeds its messages back until no command is left.
func drain(m playModel, cmd tea.Cmd) playModel {
	for cmd != nil {
		var next tea.Model
		next, cmd = m.Update(cmd())
		m = next.(playModel)
	}
	return m
}

func TestPlay_Editing(t *testing.T) {
	m := newTestPlay(t, 3)

	m, _ = press(m, " ", "l", "l", "j", "j", "j", " ", "k", "h", " ")
	assert.Equal(t, grid.Start, m.g.State(grid.Pos(0, 0)))
	assert.Equal(t, grid.End, m.g.State(grid.Pos(2, 2)))
	assert.Equal(t, grid.Barrier, m.g.State(grid.Pos(1, 1)))
	assert.Equal(t, grid.Pos(1, 1), m.cursor)
	assert.Equal(t, "S..\n.@.\n..E\n", boardView{rows: 3, plain: true, cursor: m.cursor}.render(m.states))

	// the cursor stays on the board
	m, _ = press(m, "k", "k", "k", "h", "h")
	assert.Equal(t, grid.Pos(0, 0), m.cursor)

	m, _ = press(m, "x")
	assert.Equal(t, grid.Empty, m.g.State(grid.Pos(0, 0)))

	m, _ = press(m, "c")
	assert.Equal(t, 9, m.g.Count(grid.Empty))
	assert.Equal(t, "board cleared", m.status)
}

func TestPlay_Settings(t *testing.T) {
	m := newTestPlay(t, 3)
	require.Equal(t, search.DFS, m.kind)

	m, _ = press(m, "tab")
	assert.Equal(t, search.BFS, m.kind)
	m, _ = press(m, "tab", "tab")
	assert.Equal(t, search.DFS, m.kind)

	m, _ = press(m, "-")
	assert.Zero(t, m.delay)
	m, _ = press(m, "+", "+")
	assert.Equal(t, 2*delayStep, m.delay)
	for i := 0; i < 100; i++ {
		m, _ = press(m, "+")
	}
	assert.Equal(t, config.MaxDelay, m.delay)
}

func TestPlay_RunNeedsEndpoints(t *testing.T) {
	m := newTestPlay(t, 3)
	m, cmd := press(m, " ", "enter")
	assert.Nil(t, cmd)
	assert.False(t, m.running)
	assert.Equal(t, "place a start and an end first", m.status)
}

func TestPlay_Run(t *testing.T) {
	m := newTestPlay(t, 3)
	m, _ = press(m, " ", "j", "j", "l", "l", " ", "k", "h", " ", "tab")
	require.Equal(t, search.BFS, m.kind)

	m, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.True(t, m.running)
	assert.Contains(t, m.View(), "running BFS")

	// keys other than stop and quit are ignored mid-run
	m, _ = press(m, "c")
	assert.True(t, m.running)

	m = drain(m, cmd)
	assert.False(t, m.running)
	assert.Contains(t, m.status, "found a path of 4 steps")
	assert.Equal(t, 3, m.g.Count(grid.Path))
	assert.Equal(t, m.g.Snapshot(), m.states)

	// a second run clears the old marks first
	m, cmd = press(m, "enter")
	m = drain(m, cmd)
	assert.Equal(t, 3, m.g.Count(grid.Path))

	m, _ = press(m, "r")
	assert.Zero(t, m.g.Count(grid.Path))
}

func TestPlay_Stop(t *testing.T) {
	m := newTestPlay(t, 6)
	m, _ = press(m, " ", "j", "j", "j", "j", "j", "l", "l", "l", "l", "l", " ")

	m, cmd := press(m, "enter")
	require.NotNil(t, cmd)
	m, _ = press(m, "esc")
	assert.Equal(t, "stopping...", m.status)

	m = drain(m, cmd)
	assert.False(t, m.running)
	assert.Contains(t, m.status, "cancelled")
	assert.Zero(t, m.g.Count(grid.Path))
}

func TestPlay_Quit(t *testing.T) {
	m := newTestPlay(t, 3)
	_, cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPlay_View(t *testing.T) {
	m := newTestPlay(t, 2)
	v := m.View()
	assert.Contains(t, v, "gridpath")
	assert.Contains(t, v, "DFS")
	assert.True(t, strings.Contains(v, "@.\n..\n"), v)
}

func click(m playModel, x, y int, button tea.MouseButton, action tea.MouseAction) playModel {
	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Button: button, Action: action})
	return next.(playModel)
}

// TestPlay_Mouse maps terminal cells below the header onto the board.
func TestPlay_Mouse(t *testing.T) {
	m := newTestPlay(t, 3)
	left, right := tea.MouseButtonLeft, tea.MouseButtonRight

	m = click(m, 0, boardTop, left, tea.MouseActionPress)
	assert.Equal(t, grid.Start, m.g.State(grid.Pos(0, 0)))
	m = click(m, 2, boardTop+2, left, tea.MouseActionPress)
	assert.Equal(t, grid.End, m.g.State(grid.Pos(2, 2)))

	// dragging paints barriers, releasing does nothing
	m = click(m, 1, boardTop+1, left, tea.MouseActionMotion)
	m = click(m, 0, boardTop+1, left, tea.MouseActionMotion)
	m = click(m, 0, boardTop+2, left, tea.MouseActionRelease)
	assert.Equal(t, []grid.Position{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, m.g.Barriers())
	assert.Equal(t, grid.Pos(1, 0), m.cursor)

	m = click(m, 1, boardTop+1, right, tea.MouseActionPress)
	assert.Equal(t, grid.Empty, m.g.State(grid.Pos(1, 1)))
	assert.Equal(t, "1,1 cleared", m.status)
	assert.Equal(t, m.g.Snapshot(), m.states)

	// header, right of the board and below it are ignored
	before := m.g.Snapshot()
	m = click(m, 0, 0, left, tea.MouseActionPress)
	m = click(m, 3, boardTop, left, tea.MouseActionPress)
	m = click(m, 0, boardTop+3, right, tea.MouseActionPress)
	m = click(m, 1, boardTop, tea.MouseButtonWheelUp, tea.MouseActionPress)
	assert.Equal(t, before, m.g.Snapshot())
}

// TestPlay_MouseColored accounts for two-column cells.
func TestPlay_MouseColored(t *testing.T) {
	m := newTestPlay(t, 3)
	m.plain = false

	m = click(m, 5, boardTop+1, tea.MouseButtonLeft, tea.MouseActionPress)
	assert.Equal(t, grid.Start, m.g.State(grid.Pos(1, 2)))
	m = click(m, 6, boardTop, tea.MouseButtonLeft, tea.MouseActionPress)
	assert.Equal(t, 1, m.g.Count(grid.Start), "column 6 is past a 3-cell colored board")
}

// TestPlay_MouseIgnoredWhileRunning leaves the board to the run.
func TestPlay_MouseIgnoredWhileRunning(t *testing.T) {
	m := newTestPlay(t, 3)
	m, _ = press(m, " ", "j", "j", "l", "l", " ")
	m, cmd := press(m, "enter")
	require.True(t, m.running)

	m = click(m, 1, boardTop+1, tea.MouseButtonLeft, tea.MouseActionPress)
	m = drain(m, cmd)
	assert.Empty(t, m.g.Barriers())
}
