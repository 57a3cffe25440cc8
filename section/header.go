package section

import (
	"fmt"

	"github.com/arloliu/polypack/errs"
)

// Limits bounds the values and run lengths a codec accepts.
type Limits struct {
	// MaxValue is the inclusive upper bound of every element.
	MaxValue uint32
	// MaxRunLength is the inclusive upper bound of every run.
	MaxRunLength uint32
}

// Validate checks that both limits are positive and fit in a header field.
func (l Limits) Validate() error {
	if l.MaxValue == 0 || l.MaxValue > HeaderFieldMax {
		return fmt.Errorf("%w: max value %d not in [1, %d]", errs.ErrInvalidConfig, l.MaxValue, HeaderFieldMax)
	}
	if l.MaxRunLength == 0 || l.MaxRunLength > HeaderFieldMax {
		return fmt.Errorf("%w: max run length %d not in [1, %d]", errs.ErrInvalidConfig, l.MaxRunLength, HeaderFieldMax)
	}

	return nil
}

// Header is the per-message metadata stored in the lowest token digit.
//
// MaxValue and MaxRunLength are the true maxima of the encoded runs, not the
// codec limits. An empty message has a zero Header.
type Header struct {
	MaxValue     uint32
	MaxRunLength uint32
}

// Digit packs the header into a digit in [0, HeaderRadix).
func (h Header) Digit() uint64 {
	return uint64(h.MaxValue&HeaderFieldMax) | uint64(h.MaxRunLength&HeaderFieldMax)<<HeaderFieldBits
}

// IsEmpty reports whether the header describes an empty message.
func (h Header) IsEmpty() bool {
	return h.MaxValue == 0 && h.MaxRunLength == 0
}

// Validate checks a decoded header against the codec limits.
//
// Returns:
//   - error: ErrCorruptDigit if either field is zero or exceeds its limit
func (h Header) Validate(limits Limits) error {
	if h.MaxValue == 0 || h.MaxValue > limits.MaxValue {
		return fmt.Errorf("%w: header max value %d not in [1, %d]", errs.ErrCorruptDigit, h.MaxValue, limits.MaxValue)
	}
	if h.MaxRunLength == 0 || h.MaxRunLength > limits.MaxRunLength {
		return fmt.Errorf("%w: header max run length %d not in [1, %d]",
			errs.ErrCorruptDigit, h.MaxRunLength, limits.MaxRunLength)
	}

	return nil
}

// ParseHeaderDigit unpacks a header digit.
//
// Returns:
//   - Header: the unpacked fields
//   - error: ErrCorruptDigit if digit is not below HeaderRadix
func ParseHeaderDigit(digit uint64) (Header, error) {
	if digit >= HeaderRadix {
		return Header{}, fmt.Errorf("%w: header digit %d exceeds radix %d", errs.ErrCorruptDigit, digit, HeaderRadix)
	}

	return Header{
		MaxValue:     uint32(digit & HeaderFieldMax),                     //nolint: gosec
		MaxRunLength: uint32((digit >> HeaderFieldBits) & HeaderFieldMax), //nolint: gosec
	}, nil
}
