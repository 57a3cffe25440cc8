package section

const (
	// HeaderFieldBits is the width of each header digit field.
	HeaderFieldBits = 16
	// HeaderFieldMax is the largest value a header field can hold.
	HeaderFieldMax = 1<<HeaderFieldBits - 1
	// HeaderRadix is the fixed radix of the header digit.
	HeaderRadix uint64 = 1 << (2 * HeaderFieldBits)

	// Envelope flag masks
	EnvelopeCompressionMask = 0x0F // Mask for compression type (bits 0-3)
	EnvelopeChecksumMask    = 0x10 // Mask for checksum presence (bit 4)
	EnvelopeMagicMask       = 0xE0 // Mask for magic number (bits 5-7)

	// EnvelopeMagic identifies an enveloped token (0b101 in bits 5-7).
	EnvelopeMagic = 0xA0

	// EnvelopeFlagSize is the size of the envelope flag in bytes.
	EnvelopeFlagSize = 1
	// ChecksumSize is the size of the envelope checksum trailer in bytes.
	ChecksumSize = 4
)
