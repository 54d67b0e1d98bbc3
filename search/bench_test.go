package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// benchBoard builds an n×n board with Start top-left, End bottom-right and
// roughly density of the remaining cells set to Barrier.
func benchBoard(b *testing.B, n int, density float64) *grid.Grid {
	b.Helper()
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	r := rand.New(rand.NewSource(42))
	g.Each(func(c *grid.Cell) {
		if r.Float64() < density {
			c.SetState(grid.Barrier)
		}
	})
	_ = g.SetState(grid.Pos(0, 0), grid.Start)
	_ = g.SetState(grid.Pos(n-1, n-1), grid.End)
	g.RefreshNeighbors()
	return g
}

// benchmarkSolve runs kind repeatedly on the same layout; ClearSearch
// between runs keeps adjacency fresh.
//
// Complexity: O(N) per run for DFS and BFS, O(N log N) for A*, N = n².
func benchmarkSolve(b *testing.B, kind search.Algorithm, n int, density float64) {
	g := benchBoard(b, n, density)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearSearch()
		if _, err := search.Solve(kind, g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDFS_200(b *testing.B)   { benchmarkSolve(b, search.DFS, 200, 0.25) }
func BenchmarkBFS_200(b *testing.B)   { benchmarkSolve(b, search.BFS, 200, 0.25) }
func BenchmarkAStar_200(b *testing.B) { benchmarkSolve(b, search.AStar, 200, 0.25) }

// BenchmarkAStar_Open500 measures A* on a barrier-free 500×500 board.
func BenchmarkAStar_Open500(b *testing.B) { benchmarkSolve(b, search.AStar, 500, 0) }
