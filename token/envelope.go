package token

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/polypack/compress"
	"github.com/arloliu/polypack/errs"
	"github.com/arloliu/polypack/internal/hash"
	"github.com/arloliu/polypack/section"
)

// seal wraps payload as flag | compressed payload | checksum.
func (c *Codec) seal(payload []byte) ([]byte, error) {
	compressed, err := c.payloadCodec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	flag := section.NewEnvelopeFlag(c.cfg.compression, c.cfg.checksum)

	size := section.EnvelopeFlagSize + len(compressed)
	if c.cfg.checksum {
		size += section.ChecksumSize
	}

	out := make([]byte, 0, size)
	out = append(out, byte(flag))
	out = append(out, compressed...)
	if c.cfg.checksum {
		out = binary.BigEndian.AppendUint32(out, hash.Checksum(payload))
	}

	return out, nil
}

// open unwraps an envelope and returns the verified payload.
//
// The compression type is taken from the flag byte, so tokens sealed with any
// supported compressor open. A codec that seals checksums requires one.
func (c *Codec) open(data []byte) ([]byte, error) {
	flag, err := section.ParseEnvelopeFlag(data)
	if err != nil {
		return nil, err
	}
	if c.cfg.checksum && !flag.HasChecksum() {
		return nil, fmt.Errorf("%w: checksum required but missing", errs.ErrInvalidEnvelope)
	}

	body := data[section.EnvelopeFlagSize:]
	var sum uint32
	if flag.HasChecksum() {
		if len(body) < section.ChecksumSize {
			return nil, fmt.Errorf("%w: %d bytes too short for checksum", errs.ErrInvalidEnvelope, len(body))
		}
		split := len(body) - section.ChecksumSize
		sum = binary.BigEndian.Uint32(body[split:])
		body = body[:split]
	}

	codec, err := compress.GetCodec(flag.Compression())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidEnvelope, err)
	}

	payload, err := codec.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidEnvelope, err)
	}

	if flag.HasChecksum() && hash.Checksum(payload) != sum {
		return nil, fmt.Errorf("%w: stored 0x%08x, computed 0x%08x",
			errs.ErrChecksumMismatch, sum, hash.Checksum(payload))
	}

	return payload, nil
}
