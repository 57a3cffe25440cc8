package encoding

import (
	"fmt"

	"github.com/arloliu/polypack/errs"
)

// Packer maps a (value, count) pair to a single run digit and back.
//
// The low band of size maxValue+1 holds the value, the high band holds the count.
// Packer is stateless apart from the message header value it was created with.
type Packer struct {
	maxValue uint64
	band     uint64
}

// NewPacker creates a packer for a message whose largest value is maxValue.
func NewPacker(maxValue uint32) Packer {
	return Packer{
		maxValue: uint64(maxValue),
		band:     uint64(maxValue) + 1,
	}
}

// Pack composes value and count into one digit.
func (p Packer) Pack(value, count uint32) uint64 {
	return uint64(value) + uint64(count)*p.band
}

// Unpack splits a digit back into its value and count.
//
// Returns:
//   - Run: the unpacked pair
//   - error: ErrCorruptDigit if the value band is 0 or exceeds maxValue
func (p Packer) Unpack(packed uint64) (Run, error) {
	value := packed % p.band
	count := packed / p.band
	if value == 0 || value > p.maxValue {
		return Run{}, fmt.Errorf("%w: digit %d unpacks to value %d, max %d",
			errs.ErrCorruptDigit, packed, value, p.maxValue)
	}
	if count > uint64(^uint32(0)) {
		return Run{}, fmt.Errorf("%w: digit %d unpacks to count %d", errs.ErrCorruptDigit, packed, count)
	}

	return Run{Value: uint32(value), Count: uint32(count)}, nil //nolint: gosec
}

// RunDigitRadix returns the radix of run digits for a message header.
//
// The radix is one more than the number of (value, count) combinations, so it
// strictly exceeds the largest packed digit (maxValue+1)*(maxRunLength+1)-1.
func RunDigitRadix(maxValue, maxRunLength uint32) uint64 {
	return (uint64(maxValue)+1)*(uint64(maxRunLength)+1) + 1
}
