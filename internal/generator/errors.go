package generator

import (
	"errors"
)

var (
	// ErrNilSource is returned by New if no random source was given.
	ErrNilSource = errors.New("random source can not be nil")

	// ErrCharsetNotSpecified is returned if the charset or category selection is empty.
	ErrCharsetNotSpecified = errors.New("charset not specified")

	// ErrCharsetTooSmall is returned if the charset holds fewer than two distinct characters.
	ErrCharsetTooSmall = errors.New("charset too small, at least two distinct characters are required")

	// ErrLengthNotPositive is returned if the requested length is less than one.
	ErrLengthNotPositive = errors.New("length must be positive")

	// ErrLengthExceedsMaximum is returned if the requested length is greater than MaxLength.
	ErrLengthExceedsMaximum = errors.New("length exceeds maximum of 5000 characters")

	// ErrNegativeComponentLength is returned if a minimum count or the extra length is negative.
	ErrNegativeComponentLength = errors.New("length parameters must be greater than or equal to zero")

	// ErrUnknownSource is returned by Named for a name other than SourceFast or SourceSecure.
	ErrUnknownSource = errors.New("unknown random source")

	// ErrSourceRequired is returned by Shuffle for an empty input.
	ErrSourceRequired = errors.New("source string required")
)
