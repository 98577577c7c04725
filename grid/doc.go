// Package grid adapts a 2D cost field to the pathfinding engine: a
// rectangular map of per-cell movement costs exposed through the
// core.Graph contract, plus the matching distance heuristics.
//
// What you get:
//
//   - Map — an immutable W×H field of float64 cell costs; entering a cell
//     costs that cell's value, diagonal steps (Conn8) cost √2 times it.
//     A cell priced at core.Infinity() is impassable and never expanded.
//   - Conn4 / Conn8 connectivity, chosen at construction.
//   - Manhattan and Octile heuristic constructors shaped to plug straight
//     into the routing layer's per-goal provider.
//
// Example — a 4-connected field with a wall:
//
//	m, err := grid.New([][]float64{
//		{1, 1, 1},
//		{1, grid.Wall, 1},
//		{1, 1, 1},
//	}, grid.DefaultOptions())
//	if err != nil { ... }
//	res, err := astar.Search[grid.Cell](m, grid.Cell{0, 0}, grid.Cell{2, 2},
//		grid.Manhattan(grid.Cell{2, 2}))
//
// Heuristic admissibility: Manhattan (Conn4) and Octile (Conn8) are
// admissible as long as every walkable cell costs at least 1. Scale them
// down by the minimum cell cost otherwise, or fall back to
// core.ZeroHeuristic.
package grid
