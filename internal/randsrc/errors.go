package randsrc

import (
	"errors"
)

var (
	// ErrNegativeBound is returned when an exclusive upper bound is negative.
	ErrNegativeBound = errors.New("exclusive upper bound must be greater than or equal to zero")

	// ErrRangeInverted is returned when the inclusive lower bound exceeds the exclusive upper bound.
	ErrRangeInverted = errors.New("inclusive lower bound must be less than or equal to exclusive upper bound")
)
