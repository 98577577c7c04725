// This file provides the distance heuristics matching each connectivity.
// Both constructors have the per-goal provider shape the routing layer
// expects, so they plug into multi-stop queries without adapters.
package grid

import (
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// Manhattan returns the L1 distance estimate to goal: the exact step count
// under Conn4 and unit cell costs, admissible whenever every walkable cell
// costs at least 1.
func Manhattan(goal Cell) core.Heuristic[Cell] {
	return func(c Cell) float64 {
		return float64(abs(c.X-goal.X) + abs(c.Y-goal.Y))
	}
}

// Octile returns the 8-connectivity distance estimate to goal: diagonal
// steps cover the shorter axis at √2, straight steps the remainder.
// Admissible under Conn8 whenever every walkable cell costs at least 1.
func Octile(goal Cell) core.Heuristic[Cell] {
	return func(c Cell) float64 {
		dx, dy := abs(c.X-goal.X), abs(c.Y-goal.Y)
		if dx < dy {
			dx, dy = dy, dx
		}

		return float64(dx-dy) + math.Sqrt2*float64(dy)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
