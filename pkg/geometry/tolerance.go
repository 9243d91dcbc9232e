package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidTolerance is returned when constructing a tolerance from a
// value that is zero or negative.
var ErrInvalidTolerance = errors.New("tolerance must be larger than zero")

// Tolerance is the maximum allowed deviation between an approximation and
// the curve it approximates. A tolerance is always strictly positive.
type Tolerance struct {
	inner float64
}

// NewTolerance validates a tolerance value. A zero or negative value is an
// expected, reportable outcome, not a contract violation.
func NewTolerance(value float64) (Tolerance, error) {
	if value <= 0 {
		return Tolerance{}, fmt.Errorf("%w (got %v)", ErrInvalidTolerance, value)
	}
	return Tolerance{inner: value}, nil
}

// MustTolerance is like NewTolerance but panics on an invalid value. For
// use with literals.
func MustTolerance(value float64) Tolerance {
	t, err := NewTolerance(value)
	if err != nil {
		panic(err)
	}
	return t
}

// Value returns the tolerance as a scalar.
func (t Tolerance) Value() float64 {
	return t.inner
}
