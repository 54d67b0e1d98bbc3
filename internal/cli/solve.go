package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

// solveOptions holds the flags of the solve command.
type solveOptions struct {
	algorithm string
	rows      int
	start     string
	end       string
	barriers  string
	stdin     bool
	plain     bool
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOptions

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one search and print the marked board",
		Long: `Run one search and print the marked board.

The board comes either from stdin as a square glyph drawing
(S start, E end, # barrier, . empty) or from --rows, --start, --end and
--barrier. Exit status is 0 when a path is found, 2 when none exists and
130 when interrupted.`,
		Example: `  gridpath solve --rows 5 --start 0,0 --end 0,4 --barrier "1,0;1,1;1,2;1,3"
  printf 'S..\n.#.\n..E\n' | gridpath solve --stdin --algorithm bfs --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "DFS, BFS or A* (default from config)")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "board size in cells (default from config)")
	cmd.Flags().StringVar(&opts.start, "start", "", "start cell as row,col")
	cmd.Flags().StringVar(&opts.end, "end", "", "end cell as row,col")
	cmd.Flags().StringVar(&opts.barriers, "barrier", "", "barrier cells as row,col;row,col;...")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "read a glyph layout from stdin")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print glyphs instead of colors")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, in io.Reader, out io.Writer, opts solveOptions) error {
	logger := loggerFromContext(ctx)

	kind := c.Config.Algorithm
	if opts.algorithm != "" {
		k, err := search.ParseAlgorithm(opts.algorithm)
		if err != nil {
			return err
		}
		kind = k
	}

	g, err := c.loadBoard(in, opts)
	if err != nil {
		return err
	}
	start, okS := g.Start()
	end, okE := g.End()
	if okS && okE && !g.Connected(start, end) {
		logger.Warn("start and end are not connected", "start", start, "end", end)
	}

	prog := newProgress(logger)
	res, err := search.Solve(kind, g,
		search.WithContext(ctx),
		search.WithOnStep(func(s search.Step) {
			logger.Debug("step", "n", s.Index, "phase", s.Phase, "cell", s.Current)
		}),
	)
	if err != nil {
		return err
	}
	prog.done("search finished", "algorithm", kind, "outcome", res.Outcome)

	fmt.Fprint(out, boardView{rows: g.Rows(), plain: opts.plain, cursor: noCursor}.render(g.Snapshot()))
	fmt.Fprintln(out)
	printKeyValue(out, "algorithm", kind.String())
	printKeyValue(out, "outcome", res.Outcome.String())
	printKeyValue(out, "barriers", strconv.Itoa(len(g.Barriers())))
	printKeyValue(out, "expanded", strconv.Itoa(res.Expanded))

	switch res.Outcome {
	case search.Found:
		printKeyValue(out, "length", strconv.Itoa(res.Len()))
		printStatus(out, true, "path found")
		return nil
	case search.Cancelled:
		return &ExitError{Code: ExitCancelled, Err: context.Canceled}
	default:
		if walls, err := g.Breach(start, end); err == nil && len(walls) > 0 {
			printKeyValue(out, "clear", formatPositions(walls))
		}
		printStatus(out, false, "no path")
		return &ExitError{Code: ExitExhausted, Err: errors.New("no path between start and end")}
	}
}

// loadBoard builds the board from stdin or from flags and refreshes adjacency.
func (c *CLI) loadBoard(in io.Reader, opts solveOptions) (*grid.Grid, error) {
	if opts.stdin {
		if opts.start != "" || opts.end != "" || opts.barriers != "" || opts.rows != 0 {
			return nil, errors.New("--stdin cannot be combined with --rows, --start, --end or --barrier")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return grid.Parse(string(data))
	}

	rows := opts.rows
	if rows == 0 {
		rows = c.Config.Rows
	}
	if rows < 1 || rows > config.MaxRows {
		return nil, fmt.Errorf("--rows %d: %w", rows, config.ErrInvalidRows)
	}
	g, err := grid.New(rows, c.Config.Width)
	if err != nil {
		return nil, err
	}

	barriers, err := parsePositions(opts.barriers)
	if err != nil {
		return nil, fmt.Errorf("--barrier: %w", err)
	}
	for _, p := range barriers {
		if err := g.SetState(p, grid.Barrier); err != nil {
			return nil, fmt.Errorf("--barrier %v: %w", p, err)
		}
	}
	for _, f := range []struct {
		name, value string
		state       grid.State
	}{
		{"--start", opts.start, grid.Start},
		{"--end", opts.end, grid.End},
	} {
		if f.value == "" {
			return nil, fmt.Errorf("%s is required without --stdin", f.name)
		}
		p, err := parsePosition(f.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		if err := g.SetState(p, f.state); err != nil {
			return nil, fmt.Errorf("%s %v: %w", f.name, p, err)
		}
	}
	g.RefreshNeighbors()

	return g, nil
}

// parsePosition reads "row,col".
func parsePosition(s string) (grid.Position, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return grid.Position{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return grid.Position{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return grid.Position{}, fmt.Errorf("bad col in %q: %w", s, err)
	}
	return grid.Pos(row, col), nil
}

// formatPositions is the inverse of parsePositions.
func formatPositions(ps []grid.Position) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.String()
	}
	return strings.Join(parts, ";")
}

// parsePositions reads "row,col;row,col;...". Empty items are skipped.
func parsePositions(s string) ([]grid.Position, error) {
	var out []grid.Position
	for _, item := range strings.Split(s, ";") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		p, err := parsePosition(item)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
