// Package errs defines the sentinel errors returned by polypack.
//
// Errors are wrapped with additional context (offending value, index, digit)
// using fmt.Errorf("%w: ..."), so callers should match them with errors.Is.
package errs

import "errors"

// Encoding errors.
var (
	// ErrOutOfRangeValue is returned when an input element lies outside [1, MaxValue].
	ErrOutOfRangeValue = errors.New("value out of range")
	// ErrRunTooLong is returned when a value repeats more than MaxRunLength times.
	ErrRunTooLong = errors.New("run length exceeds limit")
)

// Decoding errors.
var (
	// ErrInvalidBase64 is returned when the token is not valid base64 text.
	ErrInvalidBase64 = errors.New("invalid base64 token")
	// ErrCorruptDigit is returned when a header or run digit unpacks outside its bounds,
	// or when the decoded runs are inconsistent with the header.
	ErrCorruptDigit = errors.New("corrupt digit")
	// ErrInvalidEnvelope is returned when an enveloped token has a bad flag byte,
	// is truncated, or its payload cannot be decompressed.
	ErrInvalidEnvelope = errors.New("invalid token envelope")
	// ErrChecksumMismatch is returned when the envelope checksum does not match the payload.
	ErrChecksumMismatch = errors.New("token checksum mismatch")
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when codec options describe an unusable configuration.
	ErrInvalidConfig = errors.New("invalid codec configuration")
)
