// Package polypack packs a bounded multiset of small unsigned integers into a
// short printable token.
//
// Values are sorted, coalesced into (value, count) runs, and each run becomes
// one digit of a single arbitrary-precision integer whose lowest digit records
// the message's largest value and longest run. The integer is rendered as
// big-endian bytes and base64 text. Decoding returns the canonical form of the
// multiset: every value, in non-increasing order. Original order is not kept.
//
// # Core Features
//
//   - One opaque text token per list, typically far shorter than the decimal list
//   - Per-message radix, so short lists of small values yield very short tokens
//   - Strict decoding: tampered or incompatible tokens fail with typed errors
//   - Configurable limits through profiles (Compact, Wide) or explicit bounds
//   - Optional envelope with Zstd, S2 or LZ4 compression and an xxHash checksum
//   - Optional LRU cache of decoded tokens
//
// # Basic Usage
//
//	text, err := polypack.Encode([]uint32{1, 1, 2, 2, 2, 3})
//	// text == "Cx4AAwAD"
//
//	values, err := polypack.Decode(text)
//	// values == []uint32{3, 2, 2, 2, 1, 1}
//
// Custom configuration:
//
//	codec, err := polypack.NewCodec(
//	    token.WithProfile(token.ProfileWide),
//	    token.WithTextEncoding(format.TextRawURL),
//	    token.WithChecksum(true),
//	)
//
// # Errors
//
// Failures wrap the sentinel errors of package errs and can be matched with
// errors.Is: ErrOutOfRangeValue, ErrRunTooLong, ErrInvalidBase64,
// ErrCorruptDigit, ErrInvalidEnvelope, ErrChecksumMismatch, ErrInvalidConfig.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the token package.
// The encoding package exposes the individual stages (planning, packing,
// polynomial, text) for diagnostics and tests.
package polypack

import (
	"github.com/arloliu/polypack/token"
)

var defaultCodec = mustNewCodec()

func mustNewCodec() *token.Codec {
	codec, err := token.NewCodec()
	if err != nil {
		panic(err)
	}

	return codec
}

// NewCodec creates a token codec with custom options.
//
// Available options:
//   - token.WithProfile(token.ProfileCompact|ProfileWide)
//   - token.WithMaxValue(n) / token.WithMaxRunLength(n)
//   - token.WithTextEncoding(format.TextStd|TextURL|TextRawStd|TextRawURL)
//   - token.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - token.WithChecksum(true|false)
//   - token.WithDecodeCache(size)
//
// Returns an error if the configuration is invalid.
func NewCodec(opts ...token.Option) (*token.Codec, error) {
	return token.NewCodec(opts...)
}

// Encode packs list into a token using the default configuration:
// values in [1, 300], runs up to 1000, padded standard base64, no envelope.
func Encode(list []uint32) (string, error) {
	return defaultCodec.Encode(list)
}

// Decode unpacks a token produced by Encode into the canonical descending list.
func Decode(text string) ([]uint32, error) {
	return defaultCodec.Decode(text)
}
