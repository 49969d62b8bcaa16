package randsrc

import (
	"math"

	"github.com/pkg/errors"
)

// Source supplies uniformly distributed integers.
type Source interface {
	// Next returns a non-negative integer in [0, math.MaxInt).
	Next() int

	// NextN returns an integer in [0, toExclusive). A bound of 0 or 1 yields 0.
	NextN(toExclusive int) (int, error)

	// NextRange returns an integer in [fromInclusive, toExclusive).
	// Equal bounds yield fromInclusive.
	NextRange(fromInclusive, toExclusive int) (int, error)
}

// uniform64 produces uniformly distributed 64 bit values.
type uniform64 interface {
	Uint64() uint64
}

// sampler maps raw 64 bit values onto integer ranges without modulo bias.
type sampler struct {
	u uniform64
}

// Next implements Source.
func (s sampler) Next() int {
	return int(s.below(math.MaxInt))
}

// NextN implements Source.
func (s sampler) NextN(toExclusive int) (int, error) {
	if toExclusive < 0 {
		return 0, errors.Wrapf(ErrNegativeBound, "toExclusive %d", toExclusive)
	}

	if toExclusive <= 1 {
		return 0, nil
	}

	return int(s.below(uint64(toExclusive))), nil
}

// NextRange implements Source.
func (s sampler) NextRange(fromInclusive, toExclusive int) (int, error) {
	if fromInclusive > toExclusive {
		return 0, errors.Wrapf(ErrRangeInverted, "range [%d, %d)", fromInclusive, toExclusive)
	}

	// the width of any ordered pair of ints fits an uint64, even math.MinInt to math.MaxInt
	width := uint64(toExclusive) - uint64(fromInclusive)
	if width <= 1 {
		return fromInclusive, nil
	}

	return int(uint64(fromInclusive) + s.below(width)), nil
}

// below returns a value in [0, n) for n >= 2.
func (s sampler) below(n uint64) uint64 {
	if n&(n-1) == 0 {
		return s.u.Uint64() & (n - 1)
	}

	// 2^64 mod n; values under it would favour the low residues
	threshold := -n % n

	for {
		v := s.u.Uint64()
		if v >= threshold {
			return v % n
		}
	}
}
