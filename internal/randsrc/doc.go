// Package randsrc provides the uniform integer sources consumed by the string generator.
// Both sources are free of modulo bias and safe for concurrent use: Fast wraps math/rand/v2,
// Secure draws from crypto/rand.
package randsrc
