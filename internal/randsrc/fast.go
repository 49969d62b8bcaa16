package randsrc

import (
	"math/rand/v2"
	"sync"
)

// Fast is a general purpose, non-cryptographic Source.
// It must not be used for passwords or other secrets.
type Fast struct {
	sampler
}

// NewFast returns a Fast source backed by the runtime's concurrency safe generator.
func NewFast() *Fast {
	return &Fast{sampler{u: runtimeRand{}}}
}

// NewFastSeeded returns a Fast source producing a reproducible PCG sequence.
func NewFastSeeded(seed1, seed2 uint64) *Fast {
	return &Fast{sampler{u: &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}}} //nolint:gosec
}

type runtimeRand struct{}

func (runtimeRand) Uint64() uint64 {
	return rand.Uint64() //nolint:gosec
}

// lockedRand serializes access to a *rand.Rand, which is not safe for concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Uint64() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.r.Uint64()
}

var _ Source = (*Fast)(nil)
