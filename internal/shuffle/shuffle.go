// Package shuffle implements an unbiased in-place Fisher-Yates shuffle over a randsrc.Source.
package shuffle

import (
	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/randstring/internal/randsrc"
)

// Shuffle permutes s in place so that every ordering is equally likely.
// Position i is swapped with a position drawn from [i, len(s)); drawing from [0, len(s))
// instead would skew the result.
func Shuffle[T any](s []T, src randsrc.Source) error {
	if len(s) < 2 {
		return nil
	}

	for i := range s {
		j, err := src.NextRange(i, len(s))
		if err != nil {
			return errors.Wrap(err, "shuffle")
		}

		s[i], s[j] = s[j], s[i]
	}

	return nil
}
