// Package capacity packs string lengths, hashes and short string bytes into
// the 64-bit metadata word of an atom.
//
// Layout of the word (bit 0 is the least significant):
//
//	bits 0-1   tag (never 0 for a valid atom)
//	inline:    bits 2-4 length, bits 8-63 up to seven bytes of text
//	static:    bits 2-31 length, bits 32-63 content hash
//	dynamic:   tag only
//
// Functions return an error wrapping ErrOverflow when a value does not fit.
// Callers treat that as a programmer error.
package capacity
