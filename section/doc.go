// Package section defines the fixed layouts that frame a polypack token.
//
// A token carries two pieces of metadata that the decoder must recover before it
// can interpret anything else:
//
//  1. Header: the per-message maximum value and maximum run length, packed into
//     the lowest digit of the token polynomial with a fixed radix (HeaderRadix).
//  2. EnvelopeFlag: an optional leading byte describing payload compression and
//     checksum, present only when the codec is configured to use them.
//
// # Header Digit
//
// The header digit holds two 16-bit fields:
//
//	bits  0-15: MaxValue
//	bits 16-31: MaxRunLength
//
// HeaderRadix is 2^32 so both fields always fit without truncation.
//
// # Envelope
//
//	┌──────────┬──────────────────────────┬────────────────────┐
//	│ flag (1) │ payload (compressed)     │ checksum (4, opt.) │
//	└──────────┴──────────────────────────┴────────────────────┘
//
// The checksum is stored big-endian and covers the uncompressed polynomial bytes.
package section
