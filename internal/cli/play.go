package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

// delayStep is how much + and - change the frame delay.
const delayStep = 10 * time.Millisecond

// boardTop is the number of lines View prints above the board.
const boardTop = 2

func (c *CLI) playCommand() *cobra.Command {
	var (
		rows      int
		algorithm string
		delay     time.Duration
		plain     bool
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Edit a board and watch searches step by step",
		Long: `Edit a board and watch searches step by step.

Move with the arrow keys or hjkl. Space or a left click places the start,
then the end, then barriers; x or a right click erases. Dragging paints. Tab cycles DFS, BFS and A*. Enter runs the
search, esc stops it. + and - change the animation delay, r clears the
search marks, c clears the board, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config
			if rows != 0 {
				cfg.Rows = rows
			}
			if algorithm != "" {
				k, err := search.ParseAlgorithm(algorithm)
				if err != nil {
					return err
				}
				cfg.Algorithm = k
			}
			if cmd.Flags().Changed("delay") {
				cfg.Delay = delay
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			m, err := newPlayModel(cmd.Context(), cfg, plain)
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			if err != nil {
				return err
			}
			if pm, ok := final.(playModel); ok && pm.cancel != nil {
				pm.cancel()
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "board size in cells (default from config)")
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "initial strategy: DFS, BFS or A*")
	cmd.Flags().DurationVar(&delay, "delay", config.DefaultDelay, "pause between frames, 0 to 500ms")
	cmd.Flags().BoolVar(&plain, "plain", false, "draw glyphs instead of colors")

	return cmd
}

// =============================================================================
// playModel - interactive board editor and search player
// =============================================================================

type (
	// stepMsg delivers one streamed search step.
	stepMsg search.Event
	// frameMsg ends the pause between two frames.
	frameMsg struct{}
	// doneMsg delivers the terminal report of a run.
	doneMsg search.Report
)

type playModel struct {
	ctx    context.Context
	logger *log.Logger

	g      *grid.Grid
	width  int
	kind   search.Algorithm
	delay  time.Duration
	plain  bool
	cursor grid.Position

	// states is what the board shows; during a run it is the latest
	// streamed snapshot, since the run goroutine owns g.
	states []grid.State

	running bool
	cancel  context.CancelFunc
	events  <-chan search.Event
	report  <-chan search.Report

	status string
}

func newPlayModel(ctx context.Context, cfg config.Config, plain bool) (playModel, error) {
	g, err := grid.New(cfg.Rows, cfg.Width)
	if err != nil {
		return playModel{}, err
	}
	return playModel{
		ctx:    ctx,
		logger: loggerFromContext(ctx),
		g:      g,
		width:  cfg.Width,
		kind:   cfg.Algorithm,
		delay:  config.ClampDelay(cfg.Delay),
		plain:  plain,
		states: g.Snapshot(),
		status: "place a start and an end, then press enter",
	}, nil
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.running {
			return m.updateRunning(msg)
		}
		return m.updateEditing(msg)

	case tea.MouseMsg:
		if !m.running {
			return m.updateMouse(msg)
		}

	case stepMsg:
		m.states = msg.States
		if m.delay > 0 {
			return m, tea.Tick(m.delay, func(time.Time) tea.Msg { return frameMsg{} })
		}
		return m, m.next()

	case frameMsg:
		if m.running {
			return m, m.next()
		}

	case doneMsg:
		m.finish(search.Report(msg))
	}
	return m, nil
}

func (m playModel) updateRunning(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.cancel()
		return m, tea.Quit
	case "esc":
		m.cancel()
		m.status = "stopping..."
	}
	return m, nil
}

func (m playModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.move(-1, 0)
	case "down", "j":
		m.move(1, 0)
	case "left", "h":
		m.move(0, -1)
	case "right", "l":
		m.move(0, 1)
	case " ":
		s, err := m.g.Place(m.cursor)
		if err == nil {
			m.status = fmt.Sprintf("%v is %v", m.cursor, s)
		}
	case "x", "backspace", "delete":
		if err := m.g.Erase(m.cursor); err == nil {
			m.status = fmt.Sprintf("%v cleared", m.cursor)
		}
	case "tab":
		all := search.Algorithms()
		m.kind = all[(int(m.kind)+1)%len(all)]
		m.status = "algorithm " + m.kind.String()
	case "+", "=":
		m.delay = config.ClampDelay(m.delay + delayStep)
		m.status = "delay " + m.delay.String()
	case "-":
		m.delay = config.ClampDelay(m.delay - delayStep)
		m.status = "delay " + m.delay.String()
	case "r":
		m.g.ClearSearch()
		m.status = "search marks cleared"
	case "c":
		m.g.Reset()
		m.status = "board cleared"
	case "enter":
		return m.start()
	}
	m.states = m.g.Snapshot()
	return m, nil
}

// updateMouse applies the click rules: left places, right erases. Presses
// and drags both count, so holding a button paints.
func (m playModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease {
		return m, nil
	}
	p, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		s, err := m.g.Place(p)
		if err != nil {
			return m, nil
		}
		m.status = fmt.Sprintf("%v is %v", p, s)
	case tea.MouseButtonRight:
		if err := m.g.Erase(p); err != nil {
			return m, nil
		}
		m.status = fmt.Sprintf("%v cleared", p)
	default:
		return m, nil
	}
	m.cursor = p
	m.states = m.g.Snapshot()
	return m, nil
}

// cellAt maps a terminal cell to a board position. Colored boards draw
// every cell two columns wide, plain boards one.
func (m playModel) cellAt(x, y int) (grid.Position, bool) {
	cols := 2
	if m.plain {
		cols = 1
	}
	return m.g.PixelToPosition(x/cols, y-boardTop, m.g.Rows())
}

func (m *playModel) move(dr, dc int) {
	p := grid.Pos(m.cursor.Row+dr, m.cursor.Col+dc)
	if m.g.InBounds(p) {
		m.cursor = p
	}
}

// start launches a streamed run on the current board.
func (m playModel) start() (tea.Model, tea.Cmd) {
	start, okS := m.g.Start()
	end, okE := m.g.End()
	if !okS || !okE {
		m.status = "place a start and an end first"
		return m, nil
	}
	m.g.ClearSearch()
	m.g.RefreshNeighbors()
	if !m.g.Connected(start, end) {
		m.logger.Debug("endpoints disconnected", "start", start, "end", end)
	}

	m.states = m.g.Snapshot()
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.events, m.report = search.Stream(ctx, m.kind, m.g, start, end)
	m.running = true
	m.status = "running " + m.kind.String()
	m.logger.Debug("run started", "algorithm", m.kind, "delay", m.delay)

	return m, m.next()
}

// next waits for the following event, or for the report once events close.
func (m playModel) next() tea.Cmd {
	events, report := m.events, m.report
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return doneMsg(<-report)
		}
		return stepMsg(ev)
	}
}

func (m *playModel) finish(rep search.Report) {
	m.running = false
	if m.cancel != nil {
		m.cancel()
	}
	m.states = m.g.Snapshot()

	if rep.Err != nil {
		m.status = StyleError.Render(iconError) + " " + rep.Err.Error()
		return
	}
	res := rep.Result
	switch res.Outcome {
	case search.Found:
		m.status = fmt.Sprintf("%s %v found a path of %d steps, %d cells expanded",
			StyleSuccess.Render(iconSuccess), res.Algorithm, res.Len(), res.Expanded)
	default:
		m.status = fmt.Sprintf("%s %v %v after %d cells",
			StyleWarning.Render(iconWarning), res.Algorithm, res.Outcome, res.Expanded)
	}
	m.logger.Debug("run finished", "algorithm", res.Algorithm, "outcome", res.Outcome, "steps", res.Steps)
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("gridpath"))
	b.WriteString("  ")
	b.WriteString(StyleValue.Render(m.kind.String()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  delay %v", m.delay)))
	b.WriteString(strings.Repeat("\n", boardTop))

	cursor := m.cursor
	if m.running {
		cursor = noCursor
	}
	b.WriteString(boardView{rows: m.g.Rows(), plain: m.plain, cursor: cursor}.render(m.states))
	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↑↓→ move  space/click place  x/right-click erase  tab algorithm  ⏎ run  esc stop  +/- delay  r reset  c clear  q quit"))

	return b.String()
}
