// Package encoding implements the polypack token codec.
//
// A token encodes a multiset of values in [1, MaxValue] as a single
// arbitrary-precision integer, rendered as base64 text. The pipeline is:
//
//	list ──PlanRuns──▶ Plan ──EncodePolynomial──▶ *big.Int ──ToText──▶ string
//	string ──FromText──▶ *big.Int ──DecodePolynomial──▶ Plan ──Expand──▶ list
//
// # Runs
//
// PlanRuns sorts the input in descending order and coalesces equal values into
// runs (value, count). The largest value and the longest run form the message
// Header (see package section).
//
// # Digits
//
// Each run becomes one digit through a two-band mixed-radix composition:
//
//	packed = value + count * (MaxValue + 1)
//
// where MaxValue is the message header value. The run digit radix
//
//	runRadix = (MaxValue + 1) * (MaxRunLength + 1) + 1
//
// is strictly larger than any packed digit, so a run never carries into the
// next positional slot.
//
// # Polynomial
//
// The header digit occupies the lowest position with the fixed radix
// section.HeaderRadix; run digits follow in descending value order with radix
// runRadix:
//
//	poly = header + HeaderRadix * (run0 + runRadix * (run1 + runRadix * (run2 + ...)))
//
// An empty list encodes to zero, which renders as the empty byte sequence and
// the empty string.
//
// # Thread Safety
//
// All functions in this package are pure and safe for concurrent use.
package encoding
