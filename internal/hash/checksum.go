package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes a 32-bit checksum of data by folding its xxHash64.
func Checksum(data []byte) uint32 {
	sum := xxhash.Sum64(data)
	return uint32(sum>>32) ^ uint32(sum) //nolint: gosec
}
