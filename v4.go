package ids

// NewV4 generates a version 4 (random-based) UUID. All 122 free bits come
// from the generator's random source; the version and variant markers are
// spliced in over the drawn bytes.
func (g *Generator) NewV4() (UUID, error) {
	entropy, err := g.readEntropy()
	if err != nil {
		return UUID{}, err
	}
	return layoutV4(entropy[:])
}

// NewV4 generates a version 4 UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}

// NewV4String generates a version 4 UUID and returns its canonical string.
func NewV4String() (string, error) {
	u, err := NewV4()
	if err != nil {
		return "", err
	}
	return Format(u)
}
