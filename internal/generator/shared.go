package generator

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/randstring/internal/randsrc"
)

// Names of the shared generators.
const (
	SourceFast   = "fast"
	SourceSecure = "secure"
)

var (
	fast   = newShared(SourceFast, func() randsrc.Source { return randsrc.NewFast() })     //nolint:gochecknoglobals
	secure = newShared(SourceSecure, func() randsrc.Source { return randsrc.NewSecure() }) //nolint:gochecknoglobals
)

// newShared returns a function creating the Generator for name on its first call
// and returning that same instance on every call, concurrent first calls included.
func newShared(name string, newSource func() randsrc.Source) func() *Generator {
	return sync.OnceValue(func() *Generator {
		log.Debug().Str("source", name).Msg("shared generator initialized")

		return &Generator{src: newSource()}
	})
}

// Fast returns the process-wide Generator backed by a fast, non-cryptographic source.
// It must not be used to generate passwords.
func Fast() *Generator {
	return fast()
}

// Secure returns the process-wide Generator backed by a cryptographically secure source.
func Secure() *Generator {
	return secure()
}

// Named returns the shared Generator called name, SourceFast or SourceSecure.
func Named(name string) (*Generator, error) {
	switch name {
	case SourceFast:
		return Fast(), nil
	case SourceSecure:
		return Secure(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownSource, "%q", name)
	}
}
