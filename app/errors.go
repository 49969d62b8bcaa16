package app

import (
	"errors"
)

var (
	// ErrConflictingModes error if flags of more than one generation mode are set.
	ErrConflictingModes = errors.New("--chars, --categories and the --min-* flags can not be combined")

	// ErrLengthWithMinimums error if --length is given together with the --min-* flags.
	ErrLengthWithMinimums = errors.New("--length can not be combined with the --min-* flags, use --extra-length")
)
