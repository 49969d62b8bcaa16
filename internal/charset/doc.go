// Package charset composes the ordered, duplicate-free character sets used for random string generation.
// Character categories are combinable bit flags; Compose turns a selection into concrete runes,
// optionally without characters that are easy to confuse visually.
package charset
