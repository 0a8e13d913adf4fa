package ids

import "encoding/binary"

// Bit geometry shared by the v4 and v7 layouts (RFC 4122 / RFC 9562).
// The version nibble lives in the high half of byte 6, the variant dyad in
// the top two bits of byte 8, and the v7 timestamp occupies bytes 0-5 as a
// 48-bit big-endian integer.
const (
	entropyLen = 16 // bytes of randomness consumed per generation

	versionByte = 6
	variantByte = 8

	versionV4 = 0x40 // 0100 xxxx
	versionV7 = 0x70 // 0111 xxxx

	versionKeepMask = 0x0f // low nibble of byte 6 stays random
	variantKeepMask = 0x3f // low six bits of byte 8 stay random

	variantRFC4122 = 0x80 // 10xx xxxx

	timestampBytes = 6
	timestampBits  = 48
	timestampMask  = uint64(1)<<timestampBits - 1
)

// layoutV4 assembles a version 4 layout from 16 bytes of entropy: a 48-bit
// random block, the fixed version nibble, a 12-bit random block, the fixed
// variant dyad, and a 62-bit random block. The 4+2 entropy bits that land on
// the version/variant positions are discarded, never reused elsewhere.
func layoutV4(entropy []byte) (UUID, error) {
	var u UUID
	if len(entropy) != entropyLen {
		return u, ErrInvalidLength
	}
	copy(u[:], entropy)
	u[versionByte] = u[versionByte]&versionKeepMask | versionV4
	u[variantByte] = u[variantByte]&variantKeepMask | variantRFC4122
	return u, nil
}

// layoutV7 assembles a version 7 layout: the low 48 bits of ms big-endian in
// front, then the fixed version nibble, 12 random bits, the fixed variant
// dyad, and 62 random bits. The leading 48 entropy bits are displaced by the
// timestamp and dropped along with the version/variant positions, so 54 of
// the 128 drawn bits go unused. Timestamps of 2^48 ms or more truncate to
// their low 48 bits; that is accepted behavior, not an error.
func layoutV7(ms uint64, entropy []byte) (UUID, error) {
	var u UUID
	if len(entropy) != entropyLen {
		return u, ErrInvalidLength
	}
	binary.BigEndian.PutUint64(u[0:8], (ms&timestampMask)<<16)
	copy(u[timestampBytes:], entropy[timestampBytes:])
	u[versionByte] = u[versionByte]&versionKeepMask | versionV7
	u[variantByte] = u[variantByte]&variantKeepMask | variantRFC4122
	return u, nil
}
