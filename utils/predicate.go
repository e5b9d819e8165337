package utils

import "golang.org/x/exp/constraints"

type number interface {
	constraints.Integer | constraints.Float
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}
