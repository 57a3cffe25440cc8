package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single byte", []byte{0x01}},
		{"polynomial bytes", []byte{0x12, 0xd9, 0x00, 0x03, 0x00, 0x03}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := xxhash.Sum64(tt.data)
			assert.Equal(t, uint32(sum>>32)^uint32(sum), Checksum(tt.data))
			assert.Equal(t, Checksum(tt.data), Checksum(append([]byte(nil), tt.data...)))
		})
	}
}

func TestChecksum_DetectsBitFlip(t *testing.T) {
	data := randBytes(64)
	orig := Checksum(data)
	for i := range data {
		flipped := append([]byte(nil), data...)
		flipped[i] ^= 0x01
		require.NotEqual(t, orig, Checksum(flipped), "flip at byte %d", i)
	}
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	_, _ = seededRand.Read(b)

	return b
}

func BenchmarkChecksum(b *testing.B) {
	data := randBytes(32)
	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		Checksum(data)
	}
}
