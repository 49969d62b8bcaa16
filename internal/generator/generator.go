package generator

import (
	"github.com/pkg/errors"

	"github.com/GoPowerDNS-Admin/randstring/internal/charset"
	"github.com/GoPowerDNS-Admin/randstring/internal/randsrc"
	"github.com/GoPowerDNS-Admin/randstring/internal/shuffle"
)

// MaxLength is the maximum number of characters a generated or shuffled string may have.
const MaxLength = 5000

// Generator creates random strings from the values of its random source.
type Generator struct {
	src randsrc.Source
}

// New returns a Generator drawing from src.
func New(src randsrc.Source) (*Generator, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return &Generator{src: src}, nil
}

// Generate returns a string of length characters, each picked uniformly from chars.
// Characters may repeat. chars must hold at least two distinct characters.
func (g *Generator) Generate(chars []rune, length int) (string, error) {
	if len(chars) == 0 {
		return "", ErrCharsetNotSpecified
	}

	if !hasTwoDistinct(chars) {
		return "", errors.Wrapf(ErrCharsetTooSmall, "charset %q", string(chars))
	}

	if err := checkLength(length); err != nil {
		return "", err
	}

	out, err := g.draw(make([]rune, 0, length), chars, length)
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// GenerateFromCategories returns a string of length characters picked from the composed
// charset of categories. Minus, Underscore and Space on their own are rejected as too small.
func (g *Generator) GenerateFromCategories(
	categories charset.Category,
	length int,
	excludeSimilar bool,
) (string, error) {
	if err := checkLength(length); err != nil {
		return "", err
	}

	if categories == charset.None {
		return "", ErrCharsetNotSpecified
	}

	if isSingleCharacter(categories) {
		return "", errors.Wrapf(ErrCharsetTooSmall, "category %s", categories)
	}

	return g.Generate(charset.Compose(categories, excludeSimilar), length)
}

// Shuffle returns a random permutation of the characters of source.
// Invalid UTF-8 sequences are replaced by utf8.RuneError.
func (g *Generator) Shuffle(source string) (string, error) {
	if source == "" {
		return "", ErrSourceRequired
	}

	runes := []rune(source)
	if len(runes) > MaxLength {
		return "", errors.Wrapf(ErrLengthExceedsMaximum, "source has %d characters", len(runes))
	}

	if err := shuffle.Shuffle(runes, g.src); err != nil {
		return "", err
	}

	return string(runes), nil
}

// draw appends n characters picked from chars to dst.
func (g *Generator) draw(dst, chars []rune, n int) ([]rune, error) {
	for range n {
		i, err := g.src.NextN(len(chars))
		if err != nil {
			return dst, errors.Wrap(err, "draw character")
		}

		dst = append(dst, chars[i])
	}

	return dst, nil
}

func checkLength(length int) error {
	if length < 1 {
		return errors.Wrapf(ErrLengthNotPositive, "length %d", length)
	}

	if length > MaxLength {
		return errors.Wrapf(ErrLengthExceedsMaximum, "length %d", length)
	}

	return nil
}

func hasTwoDistinct(chars []rune) bool {
	for _, r := range chars[1:] {
		if r != chars[0] {
			return true
		}
	}

	return false
}
