package encoding

import (
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/arloliu/polypack/errs"
	"github.com/arloliu/polypack/format"
)

// IntToBytes renders n as minimal-length big-endian bytes.
// Zero renders as an empty slice.
func IntToBytes(n *big.Int) []byte {
	return n.Bytes()
}

// BytesToInt interprets data as a big-endian unsigned integer.
// Empty data is zero; leading zero bytes do not change the value.
func BytesToInt(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// EncodeText renders data as base64 text using enc.
func EncodeText(data []byte, enc format.TextEncoding) string {
	return base64Encoding(enc).EncodeToString(data)
}

// DecodeText parses base64 text produced by EncodeText with the same enc.
//
// Returns:
//   - []byte: decoded bytes, empty for empty text
//   - error: ErrInvalidBase64 if text is malformed
func DecodeText(text string, enc format.TextEncoding) ([]byte, error) {
	data, err := base64Encoding(enc).DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidBase64, err)
	}

	return data, nil
}

// ToText renders a token polynomial as text.
func ToText(n *big.Int, enc format.TextEncoding) string {
	return EncodeText(IntToBytes(n), enc)
}

// FromText parses text produced by ToText with the same enc.
func FromText(text string, enc format.TextEncoding) (*big.Int, error) {
	data, err := DecodeText(text, enc)
	if err != nil {
		return nil, err
	}

	return BytesToInt(data), nil
}

func base64Encoding(enc format.TextEncoding) *base64.Encoding {
	switch enc {
	case format.TextURL:
		return base64.URLEncoding
	case format.TextRawStd:
		return base64.RawStdEncoding
	case format.TextRawURL:
		return base64.RawURLEncoding
	default:
		return base64.StdEncoding
	}
}
