// This file defines the cost semantics shared by every kernel mode:
// Infinity as the unwalkable marker, and the NaN/negative input boundary.
package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadCost indicates a NaN or negative cost reached the input boundary.
// Costs must be ≥ 0; positive infinity is the only permitted non-finite
// value and marks an unwalkable edge.
var ErrBadCost = errors.New("core: cost must be non-negative and not NaN")

// Infinity is the unwalkable-edge marker. An edge whose cost is Infinity is
// excluded from relaxation, behaving exactly as if the edge did not exist.
func Infinity() float64 { return math.Inf(1) }

// IsUnwalkable reports whether cost marks an edge as non-traversable.
func IsUnwalkable(cost float64) bool { return math.IsInf(cost, 1) }

// ValidCost validates a cost at the input boundary.
// Zero is valid, Infinity is valid (unwalkable marker); NaN and negative
// values return ErrBadCost wrapped with the offending value.
func ValidCost(cost float64) error {
	if math.IsNaN(cost) || cost < 0 {
		return fmt.Errorf("%w: %g", ErrBadCost, cost)
	}

	return nil
}
