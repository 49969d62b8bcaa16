package randsrc

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	"sync"
)

// bufLen is the number of random bytes fetched per read; it serves 64 draws.
const bufLen = 512

// Secure is a cryptographically secure Source.
type Secure struct {
	sampler
}

// NewSecure returns a Secure source reading from crypto/rand.
func NewSecure() *Secure {
	return NewSecureReader(rand.Reader)
}

// NewSecureReader returns a Secure source reading from r, which must deliver
// uniformly distributed bytes.
func NewSecureReader(r io.Reader) *Secure {
	return &Secure{sampler{u: &bufferedReader{r: r}}}
}

// bufferedReader hands out 64 bit values from a buffer refilled from r.
type bufferedReader struct {
	mu  sync.Mutex
	r   io.Reader
	buf [bufLen]byte
	pos int
	// filled is false until the first read
	filled bool
}

func (b *bufferedReader) Uint64() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.filled || b.pos+8 > bufLen {
		if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
			panic("randsrc: error reading random bytes: " + err.Error())
		}

		b.pos = 0
		b.filled = true
	}

	v := binary.LittleEndian.Uint64(b.buf[b.pos:])

	// consumed bytes are not kept around
	clear(b.buf[b.pos : b.pos+8])
	b.pos += 8

	return v
}

var _ Source = (*Secure)(nil)
