// Package search runs depth-first, breadth-first and A* search over a
// grid.Grid, marking cell states as it goes so a renderer can follow along.
//
// Every strategy runs to completion on the caller's goroutine. The step hook
// is invoked synchronously after each frontier cell is processed and after each
// path cell is marked; the cancellation signal is polled before each frontier pop.
package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Run searches g from start to end with the chosen strategy.
//
// Preconditions, checked in order:
//  1. g is non-nil (ErrGridNil).
//  2. kind is DFS, BFS or AStar (ErrUnknownAlgorithm).
//  3. start and end are in bounds, distinct, and marked Start and End
//     (ErrInvalidConfiguration).
//  4. adjacency is fresh (ErrStaleNeighbors).
//
// On success Result.Outcome is Found, Exhausted or Cancelled; the grid keeps
// whatever Open, Closed and Path marks the run produced.
func Run(kind Algorithm, g *grid.Grid, start, end grid.Position, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	if !kind.valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(kind))
	}
	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &runner{
		g:     g,
		start: start,
		end:   end,
		opts:  o,
		res:   Result{Algorithm: kind},
	}
	switch kind {
	case DFS:
		r.res.Outcome = r.dfs()
	case BFS:
		r.res.Outcome = r.bfs()
	case AStar:
		r.res.Outcome = r.astar()
	}

	return r.res, nil
}

// Solve locates the Start and End cells of g and calls Run.
// A missing Start or End yields ErrInvalidConfiguration.
func Solve(kind Algorithm, g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGridNil
	}
	start, ok := g.Start()
	if !ok {
		return Result{}, fmt.Errorf("%w: no start cell", ErrInvalidConfiguration)
	}
	end, ok := g.End()
	if !ok {
		return Result{}, fmt.Errorf("%w: no end cell", ErrInvalidConfiguration)
	}
	return Run(kind, g, start, end, opts...)
}

// DepthFirst is shorthand for Run(DFS, ...).
func DepthFirst(g *grid.Grid, start, end grid.Position, opts ...Option) (Result, error) {
	return Run(DFS, g, start, end, opts...)
}

// BreadthFirst is shorthand for Run(BFS, ...).
func BreadthFirst(g *grid.Grid, start, end grid.Position, opts ...Option) (Result, error) {
	return Run(BFS, g, start, end, opts...)
}

// AStarSearch is shorthand for Run(AStar, ...).
func AStarSearch(g *grid.Grid, start, end grid.Position, opts ...Option) (Result, error) {
	return Run(AStar, g, start, end, opts...)
}

func validate(g *grid.Grid, start, end grid.Position) error {
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v out of bounds", ErrInvalidConfiguration, start)
	}
	if !g.InBounds(end) {
		return fmt.Errorf("%w: end %v out of bounds", ErrInvalidConfiguration, end)
	}
	if start == end {
		return fmt.Errorf("%w: start and end are both %v", ErrInvalidConfiguration, start)
	}
	if s := g.State(start); s != grid.Start {
		return fmt.Errorf("%w: start cell %v is %v", ErrInvalidConfiguration, start, s)
	}
	if s := g.State(end); s != grid.End {
		return fmt.Errorf("%w: end cell %v is %v", ErrInvalidConfiguration, end, s)
	}
	if g.Stale() {
		return ErrStaleNeighbors
	}
	return nil
}

// runner holds the state shared by all strategies for a single run.
// The per-strategy search record (frontier, visited, predecessors) lives
// in the strategy's own stack frame and dies with it.
type runner struct {
	g          *grid.Grid
	start, end grid.Position
	opts       Options
	res        Result
}

// cancelled polls the context and the cancellation signal.
func (r *runner) cancelled() bool {
	if r.opts.Ctx.Err() != nil {
		return true
	}
	return r.opts.Cancel()
}

// explore reports one processed frontier cell.
func (r *runner) explore(p grid.Position) {
	r.res.Expanded++
	r.emit(Explore, p)
}

func (r *runner) emit(phase Phase, p grid.Position) {
	r.res.Steps++
	r.opts.OnStep(Step{Index: r.res.Steps, Phase: phase, Current: p})
}

// open marks a newly discovered cell; the start cell keeps its tag.
func (r *runner) open(p grid.Position) {
	if p != r.start {
		r.g.Cell(p).SetState(grid.Open)
	}
}

// close marks a processed cell; the start cell keeps its tag.
func (r *runner) close(p grid.Position) {
	if p != r.start {
		r.g.Cell(p).SetState(grid.Closed)
	}
}
