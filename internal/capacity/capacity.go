package capacity

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrOverflow is returned when a length does not fit its bit field.
var ErrOverflow = errors.New("capacity overflow")

const (
	// TagBits is the number of low bits reserved for the representation tag.
	TagBits = 2
	// TagMask selects the tag bits.
	TagMask uint64 = 1<<TagBits - 1

	// MaxInlineLen is the word size. Strings strictly shorter than this are inlined.
	MaxInlineLen = int(unsafe.Sizeof(uint64(0)))

	inlineLenBits        = 3
	inlineLenMask uint64 = 1<<inlineLenBits - 1

	staticLenBits        = 30
	staticLenMask uint64 = 1<<staticLenBits - 1

	// MaxStaticLen is the longest string a static atom can describe.
	MaxStaticLen = 1<<staticLenBits - 1
)

// Tag returns the tag bits of w.
func Tag(w uint64) uint64 {
	return w & TagMask
}

// PackInline stores tag, len(s) and the bytes of s in a single word.
func PackInline(tag uint64, s string) (uint64, error) {
	if tag == 0 || tag > TagMask {
		return 0, fmt.Errorf("invalid tag %d", tag)
	}
	if len(s) >= MaxInlineLen {
		return 0, fmt.Errorf("%w: inline length %d exceeds %d", ErrOverflow, len(s), MaxInlineLen-1)
	}

	w := tag | uint64(len(s))<<TagBits //nolint:gosec // len(s) < 8
	for i := 0; i < len(s); i++ {
		w |= uint64(s[i]) << (8 * (i + 1))
	}
	return w, nil
}

// InlineLen returns the length stored in an inline word.
func InlineLen(w uint64) int {
	return int(w >> TagBits & inlineLenMask)
}

// InlineBytes unpacks the text of an inline word into a fixed array.
// Only the first n bytes are meaningful.
func InlineBytes(w uint64) (buf [MaxInlineLen - 1]byte, n int) {
	n = InlineLen(w)
	for i := 0; i < n; i++ {
		buf[i] = byte(w >> (8 * (i + 1)))
	}
	return buf, n
}

// PackStatic stores tag, a length and a content hash in a single word.
func PackStatic(tag uint64, n int, hash uint32) (uint64, error) {
	if tag == 0 || tag > TagMask {
		return 0, fmt.Errorf("invalid tag %d", tag)
	}
	if n < 0 || n > MaxStaticLen {
		return 0, fmt.Errorf("%w: static length %d exceeds %d", ErrOverflow, n, MaxStaticLen)
	}
	return tag | uint64(n)<<TagBits | uint64(hash)<<32, nil
}

// StaticLen returns the length stored in a static word.
func StaticLen(w uint64) int {
	return int(w >> TagBits & staticLenMask)
}

// StaticHash returns the hash stored in a static word.
func StaticHash(w uint64) uint32 {
	return uint32(w >> 32)
}
