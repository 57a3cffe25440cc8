package section

import (
	"fmt"

	"github.com/arloliu/polypack/errs"
	"github.com/arloliu/polypack/format"
)

// EnvelopeFlag is the leading byte of an enveloped token.
//
// Bit 0-3 is the payload compression type.
// Bit 4 is the checksum flag, 1 means a 4-byte checksum trailer follows the payload.
// Bit 5-7 is the magic number 0b101.
type EnvelopeFlag uint8

// NewEnvelopeFlag creates a flag for the given compression and checksum setting.
func NewEnvelopeFlag(comp format.CompressionType, checksum bool) EnvelopeFlag {
	f := EnvelopeFlag(EnvelopeMagic | uint8(comp)&EnvelopeCompressionMask)
	if checksum {
		f |= EnvelopeChecksumMask
	}

	return f
}

// Compression returns the payload compression type.
func (f EnvelopeFlag) Compression() format.CompressionType {
	return format.CompressionType(uint8(f) & EnvelopeCompressionMask)
}

// HasChecksum returns whether a checksum trailer is present.
func (f EnvelopeFlag) HasChecksum() bool {
	return uint8(f)&EnvelopeChecksumMask != 0
}

// IsValidMagicNumber returns whether the magic bits are set correctly.
func (f EnvelopeFlag) IsValidMagicNumber() bool {
	return uint8(f)&EnvelopeMagicMask == EnvelopeMagic
}

// Validate checks the magic number and compression type.
func (f EnvelopeFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: bad magic in flag 0x%02x", errs.ErrInvalidEnvelope, uint8(f))
	}
	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: unknown compression in flag 0x%02x", errs.ErrInvalidEnvelope, uint8(f))
	}

	return nil
}

// ParseEnvelopeFlag reads and validates the flag at the start of data.
func ParseEnvelopeFlag(data []byte) (EnvelopeFlag, error) {
	if len(data) < EnvelopeFlagSize {
		return 0, fmt.Errorf("%w: missing flag byte", errs.ErrInvalidEnvelope)
	}

	f := EnvelopeFlag(data[0])
	if err := f.Validate(); err != nil {
		return 0, err
	}

	return f, nil
}
