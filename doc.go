// Package gridpath is a step-by-step pathfinding engine for square grids:
// depth-first, breadth-first and A* search over a board of cells, with
// every exploration and every path cell reported as it happens.
//
// 🚀 What is gridpath?
//
//	A small, zero-cgo toolkit that brings together:
//		• Board model: a rows×rows arena of cells with a 7-state tag each
//		• Editing: place start, end and barriers, erase, clear search marks
//		• Search: DFS, BFS and A* (Manhattan heuristic) behind one engine
//		• Observation: a per-step hook, cancellation and a streaming API
//		• Front ends: a CLI, a terminal player and an HTTP API
//
// ✨ Why gridpath?
//
//   - Visual - every state change is a Step you can draw
//   - Predictable - fixed neighbor order (up, right, down, left) and
//     insertion-order tie-breaks make every run reproducible
//   - Honest outcomes - Found, Exhausted and Cancelled are results, not errors
//
// Under the hood, everything is organized under these packages:
//
//	grid/       - Cell, Grid, editing rules, text layouts, connectivity
//	heuristic/  - distance estimates for A* (Manhattan, Zero)
//	search/     - DFS, BFS, A*, path reconstruction, Stream
//	internal/   - config (TOML), cli (cobra + bubbletea), server (gin)
//	cmd/gridpath - the gridpath binary
//
// Quick ASCII example:
//
//	S...E        S***E
//	####.   →    ####.
//	.....        .....
//
//	BFS marks the three cells between S and E as the path.
//
// Dive into examples/ for runnable programs.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
