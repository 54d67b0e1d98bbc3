// Package search defines outcomes, options and error definitions
// for the grid search strategies.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm outside DFS, BFS, AStar.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrInvalidConfiguration is returned when start or end is missing,
	// out of bounds, not marked as such, or both name the same cell.
	ErrInvalidConfiguration = errors.New("search: invalid configuration")

	// ErrStaleNeighbors is returned when Barrier cells changed after the last
	// grid.RefreshNeighbors. It wraps ErrInvalidConfiguration.
	ErrStaleNeighbors = fmt.Errorf("%w: neighbors not refreshed after barrier edits", ErrInvalidConfiguration)
)

// Algorithm selects a traversal strategy.
type Algorithm int

const (
	// DFS walks a LIFO frontier, re-examining the top cell until it is a dead end.
	DFS Algorithm = iota
	// BFS expands cells in non-decreasing edge distance; shortest paths.
	BFS
	// AStar expands cells by g+h with Manhattan h; shortest paths.
	AStar
)

var algorithmNames = [...]string{"DFS", "BFS", "A*"}

// Algorithms lists every strategy in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{DFS, BFS, AStar}
}

func (a Algorithm) valid() bool { return a >= DFS && a <= AStar }

// String returns "DFS", "BFS" or "A*".
func (a Algorithm) String() string {
	if a.valid() {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts the String forms case-insensitively,
// plus "astar" and "a-star" for A*.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dfs":
		return DFS, nil
	case "bfs":
		return BFS, nil
	case "a*", "astar", "a-star":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Outcome is the terminal state of a run. None of them is an error.
type Outcome int

const (
	// Exhausted means the frontier emptied without reaching the end cell.
	Exhausted Outcome = iota
	// Found means a path was reconstructed and marked.
	Found
	// Cancelled means the cancellation signal fired; grid marks are partial.
	Cancelled
)

var outcomeNames = [...]string{"exhausted", "found", "cancelled"}

func (o Outcome) String() string {
	if o >= Exhausted && o <= Cancelled {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(b []byte) error {
	for i, n := range outcomeNames {
		if strings.EqualFold(n, string(b)) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("search: unknown outcome %q", b)
}

// Phase tells which part of a run produced a Step.
type Phase int

const (
	// Explore steps follow the processing of one frontier cell.
	Explore Phase = iota
	// Trace steps follow the marking of one path cell.
	Trace
)

func (p Phase) String() string {
	if p == Trace {
		return "trace"
	}
	return "explore"
}

// Step describes one invocation of the step hook.
type Step struct {
	// Index counts hook invocations from 1.
	Index int
	// Phase is Explore or Trace.
	Phase Phase
	// Current is the frontier cell just processed, or the path cell just marked.
	Current grid.Position
}

// Result is the outcome of one run.
type Result struct {
	Algorithm Algorithm
	Outcome   Outcome
	// Path holds the route from start to end, both inclusive, when Outcome == Found.
	Path []grid.Position
	// Steps counts step hook invocations (Explore + Trace).
	Steps int
	// Expanded counts frontier cells processed (Explore steps).
	Expanded int
}

// Len returns the path length in edges, or 0 when no path was found.
func (r Result) Len() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds the hooks and signals of a run.
type Options struct {
	// Ctx cancels the run when done. Cancellation yields Outcome Cancelled,
	// not an error.
	Ctx context.Context

	// OnStep is called synchronously after every frontier cell processed and
	// after every path cell marked. It is the only suspension point of a run.
	OnStep func(Step)

	// Cancel is polled before every frontier pop; returning true stops the run.
	Cancel func() bool

	// Heuristic estimates remaining cost for AStar.
	Heuristic heuristic.Func
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op OnStep hook
//   - no cancellation signal
//   - the Manhattan heuristic
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnStep:    func(Step) {},
		Cancel:    func() bool { return false },
		Heuristic: heuristic.Manhattan,
	}
}

// WithContext sets a context whose cancellation stops the run.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the step hook, typically a redraw.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithCancel registers a cancellation signal such as "window close requested".
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cancel = fn
		}
	}
}

// WithHeuristic replaces the A* heuristic. Optimality holds only for
// admissible heuristics.
func WithHeuristic(h heuristic.Func) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
