// Package grid treats a square board of cells as a graph, the input to the
// search strategies in package search.
//
// What:
//
//   - Grid owns a flat arena of Cells; all references are Positions or
//     row-major indices, never pointers between cells.
//   - Each Cell carries one State from a flat enumeration:
//     Empty, Open, Closed, Barrier, Start, End, Path.
//   - Adjacency is 4-connected (up, right, down, left) and excludes Barrier cells.
//     It is computed on demand by RefreshNeighbors and goes stale when a cell
//     changes to or from Barrier; Stale reports that condition.
//   - Editing helpers (Place, Erase, ClearSearch, PixelToPosition) reproduce
//     point-and-click board editing and keep Start and End unique.
//   - Regions and Connected analyse contiguous free space; Breach finds the
//     fewest barriers to clear so two cells meet.
//   - Parse and String convert to and from a glyph drawing:
//
//     S.E
//     ##.
//     ...
//
// Why:
//
//   - Visual pathfinding: a renderer reads cell states after every search step.
//   - Precondition checks: Stale and Connected let callers validate a board
//     before handing it to a search.
//
// Complexity:
//
//   - New, RefreshNeighbors, Stale, Regions, Breach: O(R²) for an R×R grid.
//   - Cell, InBounds, Index, Position: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:     rows <= 0.
//   - ErrNegativeWidth: pixel width < 0.
//   - ErrOutOfBounds:   edit outside the grid.
//   - ErrBadLayout:     Parse input is empty, ragged, non-square or has unknown glyphs.
//
// Concurrency:
//
//	A Grid is not safe for concurrent use. A search borrows it for the whole run;
//	renderers on other goroutines should work from Snapshot copies.
package grid
