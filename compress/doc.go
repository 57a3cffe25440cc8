// Package compress provides optional payload compressors for polypack tokens.
//
// The token polynomial is already a dense mixed-radix number, so general-purpose
// compression rarely shrinks short tokens and usually grows them by a few bytes
// of framing. Compression pays off for long tokens built from many distinct runs
// whose byte representation still contains repeated patterns, and for
// deployments that want a uniform envelope across token sizes.
//
// Supported algorithms:
//   - None: payload stored as is
//   - Zstd: klauspost/compress/zstd, or valyala/gozstd when built with cgo and the gozstd tag
//   - S2: klauspost/compress/s2
//   - LZ4: pierrec/lz4 block format
//
// All codecs are stateless values and safe for concurrent use. Zstd and LZ4
// keep pooled encoder state internally.
//
// Example:
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, _ := codec.Compress(payload)
//	payload, err = codec.Decompress(packed)
package compress
