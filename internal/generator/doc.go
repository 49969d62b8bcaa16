// Package generator builds random strings from charsets and category selections and shuffles strings.
// A Generator holds nothing but its randsrc.Source, so one instance can serve concurrent callers
// whenever the source is safe for concurrent use. Fast and Secure return shared process-wide instances.
package generator
