// Package search finds a route between the Start and End cells of a
// grid.Grid with one of three interchangeable strategies, exposing every
// step to an observer as it happens.
//
// What
//
//   - DFS: a stack-based frontier walk. The top of the stack is examined
//     without being popped and stays there until it has no unvisited
//     neighbor; the chain of examined cells from start is the path.
//   - BFS: FIFO queue with a visited set and predecessor record; shortest
//     path in edges.
//   - AStar: min-heap ordered by f = g + h, ties broken by insertion order,
//     with a membership set mirroring the heap; shortest path in edges for
//     an admissible heuristic (Manhattan by default).
//   - While running, every strategy tags newly discovered cells Open and
//     processed cells Closed (never the start cell). On success the interior
//     path cells are tagged Path, from the end back towards the start, and
//     the end cell keeps its End tag.
//   - Stream wraps any run in a goroutine and turns steps into Events.
//
// Why
//
//   - Teaching and visualisation: the grid itself is the progress display,
//     so a renderer only has to redraw after each step.
//   - Comparing strategies on the same board: swap the Algorithm, keep the
//     grid, hooks and cancellation.
//
// Steps
//
//	OnStep is called once after each frontier cell is processed (Phase
//	Explore) and once after each path cell is marked (Phase Trace). It runs
//	synchronously on the search goroutine and is the only suspension point.
//
// Cancellation
//
//	Before every frontier pop the run polls WithCancel's signal and the
//	context set by WithContext. When either fires, the run returns at once
//	with Outcome Cancelled and no error, leaving partial Open and Closed
//	marks in place.
//
// Complexity (R×R grid, N = R²)
//
//   - DFS, BFS: Time O(N), Memory O(N).
//   - AStar:    Time O(N log N), Memory O(N).
//
// Usage
//
//	g := grid.MustParse(`
//		S...
//		###.
//		....
//		...E
//	`)
//	res, err := search.Solve(search.AStar, g,
//		search.WithOnStep(func(s search.Step) { redraw(g) }),
//	)
//	if err != nil {
//		// ErrGridNil, ErrInvalidConfiguration, ErrStaleNeighbors
//	}
//	switch res.Outcome {
//	case search.Found:
//		fmt.Println(res.Path)
//	case search.Exhausted, search.Cancelled:
//		// no path
//	}
//
// Errors
//
//   - ErrGridNil               if the grid pointer is nil.
//   - ErrUnknownAlgorithm      for an Algorithm other than DFS, BFS, AStar.
//   - ErrInvalidConfiguration  if start or end is missing, out of bounds,
//     not tagged Start/End, or both are the same cell.
//   - ErrStaleNeighbors        (wraps ErrInvalidConfiguration) if a Barrier
//     was added or removed after the last grid.RefreshNeighbors.
//
// Found, Exhausted and Cancelled are outcomes, never errors.
package search
