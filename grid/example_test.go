package grid_test

import (
	"fmt"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/grid"
)

// ExampleMap searches a small field with a wall segment; the path slips
// through the gap at the bottom.
func ExampleMap() {
	m, err := grid.New([][]float64{
		{1, grid.Wall, 1},
		{1, grid.Wall, 1},
		{1, 1, 1},
	}, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	goal := grid.Cell{X: 2, Y: 0}
	res, _ := astar.Search[grid.Cell](m, grid.Cell{X: 0, Y: 0}, goal, grid.Manhattan(goal))
	fmt.Println("cost:", res.Cost)
	for _, c := range res.Path {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()
	// Output:
	// cost: 6
	// (0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)
}
