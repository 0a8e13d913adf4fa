package ids

import "testing"

func TestEncodeDecodeHex(t *testing.T) {
	s := sampleUUID.EncodeToHex()
	if len(s) != 32 {
		t.Errorf("EncodeToHex() length = %d, want 32", len(s))
	}

	u, err := DecodeFromHex(s)
	if err != nil {
		t.Fatalf("DecodeFromHex() error = %v", err)
	}
	if u != sampleUUID {
		t.Errorf("hex round-trip mismatch: got %v, want %v", u, sampleUUID)
	}
}

func TestDecodeFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "too short", input: "f47ac10b"},
		{name: "too long", input: "f47ac10b58cc4372a5670e02b2c3d47900"},
		{name: "bad digit", input: "g47ac10b58cc4372a5670e02b2c3d479"},
		{name: "hyphenated", input: "f47ac10b-58cc-4372-a567-0e02b2c3d479"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeFromHex(tt.input); err != ErrInvalidFormat {
				t.Errorf("DecodeFromHex() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestEncodeDecodeBase64(t *testing.T) {
	s := sampleUUID.EncodeToBase64()
	u, err := DecodeFromBase64(s)
	if err != nil {
		t.Fatalf("DecodeFromBase64() error = %v", err)
	}
	if u != sampleUUID {
		t.Errorf("base64 round-trip mismatch: got %v, want %v", u, sampleUUID)
	}

	std := sampleUUID.EncodeToBase64Std()
	u, err = DecodeFromBase64Std(std)
	if err != nil {
		t.Fatalf("DecodeFromBase64Std() error = %v", err)
	}
	if u != sampleUUID {
		t.Errorf("std base64 round-trip mismatch: got %v, want %v", u, sampleUUID)
	}
}

func TestDecodeFromBase64_Invalid(t *testing.T) {
	if _, err := DecodeFromBase64("!!!"); err != ErrInvalidFormat {
		t.Errorf("DecodeFromBase64(garbage) error = %v, want ErrInvalidFormat", err)
	}
	// Valid base64 of the wrong decoded length.
	if _, err := DecodeFromBase64("AAAA"); err != ErrInvalidLength {
		t.Errorf("DecodeFromBase64(short) error = %v, want ErrInvalidLength", err)
	}
}

func TestFromBytes(t *testing.T) {
	u, err := FromBytes(sampleUUID.Bytes())
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if u != sampleUUID {
		t.Errorf("FromBytes() = %v, want %v", u, sampleUUID)
	}

	if _, err := FromBytes([]byte{1, 2, 3}); err != ErrInvalidLength {
		t.Errorf("FromBytes(short) error = %v, want ErrInvalidLength", err)
	}
}

func TestMustFromBytes(t *testing.T) {
	u := MustFromBytes(sampleUUID.Bytes())
	if u != sampleUUID {
		t.Errorf("MustFromBytes() = %v, want %v", u, sampleUUID)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustFromBytes() did not panic on short input")
		}
	}()
	MustFromBytes([]byte{1, 2, 3})
}
