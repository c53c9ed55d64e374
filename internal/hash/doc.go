// Package hash provides the hashing primitives used by hstr.
//
// # Content hash
//
// Every interned string is hashed exactly once, when its entry is created.
// The hash is xxHash64 folded to 32 bits so that it fits next to a 30-bit
// length in a static atom:
//
//	h := hash.String("Hello, world!")
//
// The same function is used for inline, static, and dynamic atoms, which is
// what lets equal atoms hash equally regardless of their representation.
//
// # CRC32-Castagnoli (CRC32C)
//
// Snapshots are protected by a CRC32C checksum, which uses hardware
// acceleration on x86 (SSE4.2) and ARM (CRC extension).
//
//	checksum := hash.CRC32C(body)
package hash
