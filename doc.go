// Package main provides the entry point of randstring, a command line tool and
// set of internal packages for generating random strings. Strings are built from
// explicit characters, from combinable character categories or from per-category
// minimums, and existing strings can be shuffled. Generation draws from either a
// fast non-cryptographic source or a cryptographically secure one; both are free
// of modulo bias. Configuration is read from etc/main.toml.
package main
