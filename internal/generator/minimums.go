package generator

import (
	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/randstring/internal/charset"
	"github.com/GoPowerDNS-Admin/randstring/internal/shuffle"
)

type minimumOptions struct {
	excludeSimilar  bool
	extraLength     int
	extraCategories charset.Category
}

// Option adjusts GenerateWithMinimums.
type Option func(*minimumOptions)

// WithExcludeSimilar leaves similar looking characters out of every block.
func WithExcludeSimilar(exclude bool) Option {
	return func(o *minimumOptions) {
		o.excludeSimilar = exclude
	}
}

// WithExtraLength appends length characters on top of the minimums. Default is zero.
func WithExtraLength(length int) Option {
	return func(o *minimumOptions) {
		o.extraLength = length
	}
}

// WithExtraCategories sets the categories extra characters are picked from. Default is charset.All.
func WithExtraCategories(categories charset.Category) Option {
	return func(o *minimumOptions) {
		o.extraCategories = categories
	}
}

// GenerateWithMinimums returns a shuffled string holding at least minUpper upper case letters,
// minLower lower case letters, minDigits digits and minSpecial special characters, plus the
// extra characters requested with WithExtraLength. Without extra characters the counts are exact.
func (g *Generator) GenerateWithMinimums(minUpper, minLower, minDigits, minSpecial int, opts ...Option) (string, error) {
	o := minimumOptions{extraCategories: charset.All}
	for _, opt := range opts {
		opt(&o)
	}

	blocks := []struct {
		category charset.Category
		count    int
	}{
		{charset.UpperCase, minUpper},
		{charset.LowerCase, minLower},
		{charset.Digits, minDigits},
		{charset.Special, minSpecial},
	}

	negative := o.extraLength < 0
	for _, b := range blocks {
		negative = negative || b.count < 0
	}

	if negative {
		return "", errors.Wrapf(ErrNegativeComponentLength,
			"minimums %d/%d/%d/%d, extra %d", minUpper, minLower, minDigits, minSpecial, o.extraLength)
	}

	// every part is checked on its own first so the sum can not overflow
	if o.extraLength > MaxLength {
		return "", errors.Wrapf(ErrLengthExceedsMaximum, "extra length %d", o.extraLength)
	}

	total := o.extraLength

	for _, b := range blocks {
		if b.count > MaxLength {
			return "", errors.Wrapf(ErrLengthExceedsMaximum, "%s minimum %d", b.category, b.count)
		}

		total += b.count
	}

	if err := checkLength(total); err != nil {
		return "", err
	}

	var extraChars []rune

	if o.extraLength > 0 {
		if o.extraCategories == charset.None {
			return "", errors.Wrap(ErrCharsetNotSpecified, "extra categories")
		}

		extraChars = charset.Compose(o.extraCategories, o.excludeSimilar)

		if len(extraChars) < 2 || !hasTwoDistinct(extraChars) {
			return "", errors.Wrapf(ErrCharsetTooSmall, "extra category %s", o.extraCategories)
		}
	}

	var (
		out = make([]rune, 0, total)
		err error
	)

	for _, b := range blocks {
		if b.count == 0 {
			continue
		}

		if out, err = g.draw(out, charset.Compose(b.category, o.excludeSimilar), b.count); err != nil {
			return "", err
		}
	}

	if o.extraLength > 0 {
		if out, err = g.draw(out, extraChars, o.extraLength); err != nil {
			return "", err
		}
	}

	if err = shuffle.Shuffle(out, g.src); err != nil {
		return "", err
	}

	return string(out), nil
}

func isSingleCharacter(c charset.Category) bool {
	return c == charset.Minus || c == charset.Underscore || c == charset.Space
}
