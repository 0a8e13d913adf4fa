// Package ids generates Universally Unique Identifiers in the random-based
// version 4 and timestamp-prefixed version 7 layouts of RFC 4122 and RFC 9562,
// rendered in the canonical lowercase hyphenated form.
//
// Version 4 UUIDs carry 122 bits of cryptographic randomness and suit any
// identifier that only needs to be unique. Version 7 UUIDs prefix 74 random
// bits with a 48-bit millisecond timestamp, so they sort by creation time,
// making them a good fit for:
//   - Database primary keys (improved B-tree locality)
//   - Event sourcing and audit logs
//   - Any identifier where chronological ordering matters
//
// Basic Usage:
//
//	// Generate a time-ordered UUIDv7
//	id, err := ids.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Generate a random UUIDv4
//	id, err = ids.NewV4()
//
//	// Generate a UUIDv7 for a known timestamp (deterministic prefix)
//	id, err = ids.NewV7FromMillis(1700000000000)
//
//	// Or go straight to the canonical string
//	s, err := ids.NewV7String()
//
// Custom Generator:
//
//	// Inject a random source and clock, e.g. for tests
//	gen := ids.NewGeneratorWithReader(deterministicReader)
//	id, err := gen.NewV7At(someTime)
//
// Construction Pipeline:
//
// Each generation call is a single-shot pure pipeline: 16 bytes are drawn
// from the random source, the version nibble and variant bits are spliced in
// over the drawn material (random bits at those positions are discarded, never
// reused), and the 128-bit value is rendered as 32 nibbles grouped 8-4-4-4-12.
// Generators hold no state between calls; concurrent use needs no
// synchronization beyond the thread safety of the random source.
//
// Timestamps at or beyond 2^48 milliseconds (around the year 10889) truncate
// silently to their low 48 bits.
package ids
