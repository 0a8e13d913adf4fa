package ids

// hexDigits maps every nibble value 0-15 to its lowercase hex digit. Indexing
// with a 4-bit value is total over the table; no fallback case exists.
const hexDigits = "0123456789abcdef"

// Canonical form: 32 hex digits grouped 8-4-4-4-12, 36 characters overall.
const (
	canonicalLen = 36
	nibbleCount  = 32
)

// groupEnds are the nibble counts after which a hyphen is inserted.
var groupEnds = [4]int{8, 12, 16, 20}

// hyphenAt reports whether a hyphen follows after n leading nibbles.
func hyphenAt(n int) bool {
	return n == groupEnds[0] || n == groupEnds[1] || n == groupEnds[2] || n == groupEnds[3]
}

// encodeCanonical renders u into dst as the canonical hyphenated lowercase
// hex string. The 128 bits are walked as 32 nibbles, most significant first.
func encodeCanonical(dst *[canonicalLen]byte, u UUID) {
	w := 0
	for n := 0; n < nibbleCount; n++ {
		if hyphenAt(n) {
			dst[w] = '-'
			w++
		}
		nib := u[n/2] >> 4
		if n%2 == 1 {
			nib = u[n/2] & 0x0f
		}
		dst[w] = hexDigits[nib]
		w++
	}
}

// Format renders u as its canonical 36-character string. Before converting
// the assembled bytes to a string it verifies each one is a lowercase hex
// digit or a hyphen at its fixed position, returning ErrEncodingFailure
// otherwise. That check cannot trip for layouts built by this package; it
// guards against future layout or table regressions corrupting output.
func Format(u UUID) (string, error) {
	var buf [canonicalLen]byte
	encodeCanonical(&buf, u)
	for i, c := range buf {
		if c == '-' {
			if i != 8 && i != 13 && i != 18 && i != 23 {
				return "", ErrEncodingFailure
			}
			continue
		}
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", ErrEncodingFailure
		}
	}
	return string(buf[:]), nil
}
