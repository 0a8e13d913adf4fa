package ids

import "time"

// NewV7 generates a version 7 (timestamp-prefixed) UUID from the generator's
// clock. Unlike counter-based v7 schemes there is no shared state: the 74
// random bits are drawn fresh on every call, so UUIDs within the same
// millisecond share a prefix but are otherwise independent.
func (g *Generator) NewV7() (UUID, error) {
	return g.NewV7At(g.now())
}

// NewV7At generates a version 7 UUID with the timestamp taken from t.
func (g *Generator) NewV7At(t time.Time) (UUID, error) {
	return g.NewV7FromMillis(uint64(t.UnixMilli()))
}

// NewV7FromMillis generates a version 7 UUID with a caller-supplied Unix
// millisecond timestamp. Useful for deterministic tests and back-dated
// identifiers. Values of 2^48 ms or more are truncated to their low 48 bits.
func (g *Generator) NewV7FromMillis(ms uint64) (UUID, error) {
	entropy, err := g.readEntropy()
	if err != nil {
		return UUID{}, err
	}
	return layoutV7(ms, entropy[:])
}

// New generates a version 7 UUID using the default generator.
// It is the recommended default: v7 UUIDs sort by creation time.
func New() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewV7 generates a version 7 UUID using the default generator.
func NewV7() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewV7FromMillis generates a version 7 UUID with a caller-supplied Unix
// millisecond timestamp using the default generator.
func NewV7FromMillis(ms uint64) (UUID, error) {
	return defaultGenerator.NewV7FromMillis(ms)
}

// NewV7String generates a version 7 UUID and returns its canonical string.
func NewV7String() (string, error) {
	u, err := NewV7()
	if err != nil {
		return "", err
	}
	return Format(u)
}

// NewV7StringFromMillis generates a version 7 UUID for ms and returns its
// canonical string.
func NewV7StringFromMillis(ms uint64) (string, error) {
	u, err := NewV7FromMillis(ms)
	if err != nil {
		return "", err
	}
	return Format(u)
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a version 7
// UUID. It returns 0 for any other version.
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	var ms uint64
	for _, b := range u[:timestampBytes] {
		ms = ms<<8 | uint64(b)
	}
	return int64(ms)
}

// Time returns the embedded timestamp of a version 7 UUID as a time.Time.
// It returns the zero time for any other version.
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeSorted {
		return time.Time{}
	}
	ms := u.Timestamp()
	return time.UnixMilli(ms)
}
