package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is reported when an operand's dimension disagrees
	// with the receiver's and the operation does not accept scalars.
	ErrDimensionMismatch = errors.New("spline: dimension mismatch")

	// ErrNotFinite is reported when a component would be NaN or infinite.
	ErrNotFinite = errors.New("spline: value is not a finite real number")

	// ErrRange is reported for indices, axes, and dimensions that are out of
	// range.
	ErrRange = errors.New("spline: index out of range")

	// ErrInvalidSwizzle is reported for swizzle names that cannot be used
	// with the receiver, including repeated names in an assignment.
	ErrInvalidSwizzle = errors.New("spline: invalid swizzle")
)

func dimensionError(op string, want, got int) error {
	return fmt.Errorf("%s: %w: want %d, got %d", op, ErrDimensionMismatch, want, got)
}

func rangeError(op string, i, n int) error {
	return fmt.Errorf("%s: %w: %d not in [0, %d)", op, ErrRange, i, n)
}

// mustMatch panics if the dimensions differ. Vector arithmetic uses it the way
// slice indexing uses bounds checks.
func mustMatch(op string, want, got int) {
	if want != got {
		panic(dimensionError(op, want, got))
	}
}

func mustIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(rangeError(op, i, n))
	}
}
