// Package token provides the configured polypack codec.
//
// A Codec bundles the limits, text alphabet and optional envelope settings that
// both sides of a token exchange must agree on. Tokens produced by one
// configuration are only guaranteed to decode with the same configuration.
//
// # Basic Usage
//
//	codec, err := token.NewCodec(token.WithProfile(token.ProfileCompact))
//	if err != nil {
//	    return err
//	}
//
//	text, err := codec.Encode([]uint32{1, 1, 2, 2, 2, 3})
//	// text == "Cx4AAwAD"
//
//	values, err := codec.Decode(text)
//	// values == []uint32{3, 2, 2, 2, 1, 1}
//
// # Profiles
//
//   - ProfileCompact: values in [1, 300], runs up to 1000 (the default)
//   - ProfileWide: values in [1, 65500], runs up to 65535
//
// WithMaxValue and WithMaxRunLength override individual limits. Both limits
// must lie in [1, 65535] so they fit the 16-bit header fields.
//
// # Envelope
//
// WithCompression and WithChecksum wrap the polynomial bytes in an envelope:
// a flag byte, the (optionally compressed) payload and an optional 4-byte
// checksum. The decoder reads the compression type from the flag byte, so any
// supported compressor decodes; a codec configured with checksums rejects
// tokens that lack one.
//
// # Thread Safety
//
// A Codec is immutable after construction and safe for concurrent use. The
// optional decode cache is internally synchronized.
package token
