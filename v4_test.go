package ids

import "testing"

func TestNewV4(t *testing.T) {
	u, err := NewV4()
	if err != nil {
		t.Fatalf("NewV4() error = %v", err)
	}

	if u.Version() != VersionRandom {
		t.Errorf("NewV4() version = %v, want %v", u.Version(), VersionRandom)
	}
	if u.Variant() != VariantRFC4122 {
		t.Errorf("NewV4() variant = %v, want %v", u.Variant(), VariantRFC4122)
	}
}

func TestNewV4String_Markers(t *testing.T) {
	for i := 0; i < 100; i++ {
		s, err := NewV4String()
		if err != nil {
			t.Fatalf("NewV4String() error = %v", err)
		}
		if !isCanonical(s) {
			t.Fatalf("NewV4String() = %q, not canonical", s)
		}
		if s[14] != '4' {
			t.Errorf("version digit = %q, want '4' in %s", s[14], s)
		}
		switch s[19] {
		case '8', '9', 'a', 'b':
		default:
			t.Errorf("variant digit = %q, want one of 8/9/a/b in %s", s[19], s)
		}
	}
}

func TestNewV4_Deterministic(t *testing.T) {
	gen := NewGeneratorWithReader(&fixedReader{pattern: []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}})

	u, err := gen.NewV4()
	if err != nil {
		t.Fatalf("NewV4() error = %v", err)
	}
	if got, want := u.String(), "00010203-0405-4607-8809-0a0b0c0d0e0f"; got != want {
		t.Errorf("String() = %s, want %s", got, want)
	}
}

func TestNewV4_Uniqueness(t *testing.T) {
	const count = 10000
	seen := make(map[UUID]bool, count)

	for i := 0; i < count; i++ {
		u, err := NewV4()
		if err != nil {
			t.Fatalf("NewV4() error = %v", err)
		}
		if seen[u] {
			t.Fatalf("duplicate UUID after %d generations: %v", i, u)
		}
		seen[u] = true
	}
}
