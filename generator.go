package ids

import (
	"crypto/rand"
	"io"
	"time"
)

// Generator produces version 4 and version 7 UUIDs from an injected random
// source and clock. It keeps no state between calls, so a single Generator
// may be shared across goroutines with no coordination beyond the thread
// safety of the underlying reader (which crypto/rand guarantees).
type Generator struct {
	randReader io.Reader
	now        func() time.Time
}

// NewGenerator creates a Generator backed by crypto/rand and the system clock.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
		now:        time.Now,
	}
}

// NewGeneratorWithReader creates a Generator with a custom random source.
// This is primarily useful for testing with deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
		now:        time.Now,
	}
}

// NewGeneratorWithClock creates a Generator with a custom time source and
// crypto/rand as the random source.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{
		randReader: rand.Reader,
		now:        now,
	}
}

// readEntropy draws one generation's worth of random bytes. Errors from the
// underlying reader pass through untouched.
func (g *Generator) readEntropy() ([entropyLen]byte, error) {
	var b [entropyLen]byte
	_, err := io.ReadFull(g.randReader, b[:])
	return b, err
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = ids.Must(ids.NewV7())
func Must(u UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return u
}

// defaultGenerator is the package-level generator used by the New* functions
var defaultGenerator = NewGenerator()
