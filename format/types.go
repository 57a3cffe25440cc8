package format

type (
	TextEncoding    uint8
	CompressionType uint8
)

const (
	TextStd    TextEncoding = 0x1 // TextStd is padded base64 with the standard alphabet.
	TextURL    TextEncoding = 0x2 // TextURL is padded base64 with the URL-safe alphabet.
	TextRawStd TextEncoding = 0x3 // TextRawStd is unpadded base64 with the standard alphabet.
	TextRawURL TextEncoding = 0x4 // TextRawURL is unpadded base64 with the URL-safe alphabet.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// IsValid reports whether e is a known text encoding.
func (e TextEncoding) IsValid() bool {
	return e >= TextStd && e <= TextRawURL
}

func (e TextEncoding) String() string {
	switch e {
	case TextStd:
		return "Std"
	case TextURL:
		return "URL"
	case TextRawStd:
		return "RawStd"
	case TextRawURL:
		return "RawURL"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression type.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
