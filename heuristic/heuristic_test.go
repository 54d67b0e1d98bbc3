package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/heuristic"
)

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b grid.Position
		want int
	}{
		{grid.Pos(0, 0), grid.Pos(0, 0), 0},
		{grid.Pos(0, 0), grid.Pos(0, 4), 4},
		{grid.Pos(0, 0), grid.Pos(2, 2), 4},
		{grid.Pos(5, 1), grid.Pos(2, 7), 9},
		{grid.Pos(-1, 3), grid.Pos(1, -3), 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, heuristic.Manhattan(tc.a, tc.b), "%v→%v", tc.a, tc.b)
		assert.Equal(t, tc.want, heuristic.Manhattan(tc.b, tc.a), "symmetry %v→%v", tc.b, tc.a)
	}
}

// TestManhattan_Consistent checks h(a) <= 1 + h(n) for every 4-neighbor n,
// the consistency condition on a unit-cost grid.
func TestManhattan_Consistent(t *testing.T) {
	goal := grid.Pos(3, 4)
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			a := grid.Pos(r, c)
			for _, n := range []grid.Position{{Row: r - 1, Col: c}, {Row: r, Col: c + 1}, {Row: r + 1, Col: c}, {Row: r, Col: c - 1}} {
				assert.LessOrEqual(t, heuristic.Manhattan(a, goal), 1+heuristic.Manhattan(n, goal))
			}
		}
	}
}

func TestZero(t *testing.T) {
	var h heuristic.Func = heuristic.Zero
	assert.Equal(t, 0, h(grid.Pos(0, 0), grid.Pos(9, 9)))
}
