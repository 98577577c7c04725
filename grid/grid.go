// This file implements the cost-field map: construction, bounds and cost
// queries, and neighbor expansion under 4- or 8-connectivity.
package grid

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for map construction and queries.
var (
	// ErrEmptyGrid indicates the input field has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: field must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a queried cell lies outside the field.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)

// Wall is the impassable cell cost. It is core.Infinity() under a
// domain-appropriate name: walls are never expanded and never entered.
var Wall = core.Infinity()

// Connectivity selects neighbor connectivity: orthogonal only (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 steps N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals, priced at √2 × the target cell cost.
	Conn8
)

// Cell addresses one field position. X grows rightward, Y grows downward,
// matching the row-major [][]float64 input (costs[Y][X]).
type Cell struct {
	X, Y int
}

// Options contains tunable map parameters.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns 4-connectivity.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// conn4Offsets and conn8Offsets are the neighbor step tables; diagonal
// steps carry the √2 length multiplier alongside the offset.
var (
	conn4Offsets = [...]struct {
		dx, dy int
		scale  float64
	}{
		{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
	}
	conn8Offsets = [...]struct {
		dx, dy int
		scale  float64
	}{
		{0, -1, 1}, {1, 0, 1}, {0, 1, 1}, {-1, 0, 1},
		{1, -1, math.Sqrt2}, {1, 1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2},
	}
)

// Map is an immutable rectangular cost field implementing core.Graph[Cell].
// Entering a cell costs that cell's stored value; cells priced at Wall are
// impassable. A Map is safe for concurrent reads.
type Map struct {
	width, height int
	cost          []float64 // row-major: cost[y*width+x]
	conn          Connectivity
}

// New constructs a Map from a non-empty rectangular cost field, deep-copying
// the input. Cell costs must pass core.ValidCost: ≥ 0 or Wall; NaN and
// negative values are rejected with the offending coordinates.
func New(costs [][]float64, opts Options) (*Map, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	field := make([]float64, 0, w*h)
	for y, row := range costs {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, c := range row {
			if err := core.ValidCost(c); err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			field = append(field, c)
		}
	}

	return &Map{width: w, height: h, cost: field, conn: opts.Conn}, nil
}

// Width returns the field width in cells.
func (m *Map) Width() int { return m.width }

// Height returns the field height in cells.
func (m *Map) Height() int { return m.height }

// InBounds reports whether c lies within the field.
func (m *Map) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// CostAt returns the stored cost of entering c, or ErrOutOfBounds.
func (m *Map) CostAt(c Cell) (float64, error) {
	if !m.InBounds(c) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, c.X, c.Y)
	}

	return m.cost[c.Y*m.width+c.X], nil
}

// Walkable reports whether c is in bounds and not a Wall.
func (m *Map) Walkable(c Cell) bool {
	return m.InBounds(c) && !core.IsUnwalkable(m.cost[c.Y*m.width+c.X])
}

// Expand returns the walkable neighbors of c with their entry costs.
// Out-of-bounds cells and Walls are omitted, as is any cell outside the
// field when c itself is out of bounds (the result is then empty).
func (m *Map) Expand(c Cell) []core.Neighbor[Cell] {
	if !m.InBounds(c) {
		return nil
	}
	offsets := conn4Offsets[:]
	if m.conn == Conn8 {
		offsets = conn8Offsets[:]
	}
	out := make([]core.Neighbor[Cell], 0, len(offsets))
	for _, step := range offsets {
		n := Cell{X: c.X + step.dx, Y: c.Y + step.dy}
		if !m.InBounds(n) {
			continue
		}
		entry := m.cost[n.Y*m.width+n.X]
		if core.IsUnwalkable(entry) {
			continue
		}
		out = append(out, core.Neighbor[Cell]{Node: n, Cost: entry * step.scale})
	}

	return out
}
