package charset

import (
	"errors"
)

var (
	// ErrUnknownCategory is returned by Parse for a name that does not denote a category.
	ErrUnknownCategory = errors.New("unknown character category")
)
