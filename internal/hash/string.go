package hash

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// String returns the 32-bit content hash of s.
//
// The 64-bit xxHash digest is folded (high ^ low) rather than truncated so
// both halves contribute to bucket selection.
func String(s string) uint32 {
	h := xxhash.Sum64String(s)
	return uint32(h ^ h>>32)
}

// Bytes returns the same hash as String(string(b)) without allocating.
func Bytes(b []byte) uint32 {
	if len(b) == 0 {
		return String("")
	}
	return String(unsafe.String(unsafe.SliceData(b), len(b))) //nolint:gosec // read-only view, not retained
}
