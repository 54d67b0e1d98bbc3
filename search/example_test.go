// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: A* around a wall
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve runs A* and prints the marked board: '*' path, 'o' still in
// the frontier, '.' untouched.
func ExampleSolve() {
	g := grid.MustParse(`
		S...
		###.
		....
		...E
	`)
	res, err := search.Solve(search.AStar, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Len(), res.Expanded)
	fmt.Print(g)

	// Output:
	// found 6 6
	// S***
	// ###*
	// ..o*
	// ...E
}

////////////////////////////////////////////////////////////////////////////////
// Example: tracing order
////////////////////////////////////////////////////////////////////////////////

// ExampleWithOnStep shows that path cells are reported from the end backwards.
func ExampleWithOnStep() {
	g := grid.MustParse(`
		S...E
		####.
		.....
		.....
		.....
	`)
	_, _ = search.Solve(search.BFS, g, search.WithOnStep(func(s search.Step) {
		if s.Phase == search.Trace {
			fmt.Println(s.Index, s.Current)
		}
	}))

	// Output:
	// 5 0,3
	// 6 0,2
	// 7 0,1
}
