package ids

import "errors"

var (
	// ErrInvalidFormat indicates that a UUID string does not match any
	// accepted textual representation
	ErrInvalidFormat = errors.New("ids: invalid UUID format")

	// ErrInvalidLength indicates that a byte sequence handed to the layout
	// stage does not have the required 16-byte shape
	ErrInvalidLength = errors.New("ids: invalid length (expected 16 bytes)")

	// ErrEncodingFailure indicates that canonical formatting produced a byte
	// outside the hex/hyphen alphabet. Unreachable for well-formed layouts;
	// reported rather than asserted so a future layout bug surfaces cleanly
	ErrEncodingFailure = errors.New("ids: canonical encoding produced invalid text")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("ids: invalid or unsupported UUID version")

	// ErrInvalidVariant indicates that the UUID variant is not RFC 4122
	ErrInvalidVariant = errors.New("ids: invalid UUID variant (expected RFC 4122)")
)
