package hstr

import (
	"strconv"
	"strings"
	"unsafe"

	"github.com/hupe1980/hstr/internal/capacity"
	"github.com/hupe1980/hstr/internal/hash"
)

// MaxInlineLen is the inline threshold. Strings strictly shorter than
// MaxInlineLen bytes are packed into the atom itself and never touch a store.
const MaxInlineLen = capacity.MaxInlineLen

const (
	tagInline  uint64 = 1
	tagStatic  uint64 = 2
	tagDynamic uint64 = 3
)

// Kind identifies the representation of an Atom.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Atom.
	KindInvalid Kind = iota
	// KindInline is a short string packed into the atom.
	KindInline
	// KindStatic refers to a string that lives for the whole program.
	KindStatic
	// KindDynamic refers to an entry owned by a Store or the global store.
	KindDynamic
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindStatic:
		return "static"
	case KindDynamic:
		return "dynamic"
	default:
		return "invalid"
	}
}

// Atom is an immutable interned string.
//
// Atoms are small values: copying one is the clone, and letting it go is the
// drop. Neither takes a lock. An Atom is one of
//
//   - inline: shorter than MaxInlineLen, bytes packed into the atom,
//   - static: a pointer to a string that outlives the program's use of it,
//   - dynamic: a pointer to an entry created by a Store or the global store.
//
// Use Equal to compare atoms. The == operator compares representations and
// reports false for equal text held by two different stores, or for an atom
// issued before a merge and one issued after it. Canonical returns a
// representation for which == agrees with Equal.
//
// The zero Atom is "no atom": it is only Equal to itself and its String is "".
type Atom struct {
	ptr  unsafe.Pointer // *entry when dynamic, string data when static, nil when inline
	bits uint64
}

func inline(text string) Atom {
	w, err := capacity.PackInline(tagInline, text)
	if err != nil {
		panic(invariant("inline", err, "cannot inline %d bytes", len(text)))
	}
	a := Atom{bits: w}
	checkRoundTrip("inline", a, text)
	return a
}

// Static returns an atom for a string that lives for the whole program,
// typically a constant:
//
//	var kwFunction = hstr.Static("function")
//
// Static atoms are never looked up in a table. Texts shorter than
// MaxInlineLen are inlined instead.
func Static(text string) Atom {
	if len(text) < MaxInlineLen {
		return inline(text)
	}

	w, err := capacity.PackStatic(tagStatic, len(text), hash.String(text))
	if err != nil {
		panic(invariant("Static", err, "cannot encode %d bytes", len(text)))
	}

	a := Atom{ptr: unsafe.Pointer(unsafe.StringData(text)), bits: w} //nolint:gosec // string data is immutable
	checkRoundTrip("Static", a, text)
	return a
}

func fromEntry(e *entry) Atom {
	return Atom{ptr: unsafe.Pointer(e), bits: tagDynamic}
}

func (a Atom) tag() uint64 {
	return capacity.Tag(a.bits)
}

func (a Atom) entry() *entry {
	return (*entry)(a.ptr)
}

// Kind returns the representation of a.
func (a Atom) Kind() Kind {
	return Kind(a.tag())
}

// IsZero reports whether a is the zero Atom.
func (a Atom) IsZero() bool {
	return a.bits == 0
}

// Len returns the length of the text in bytes.
func (a Atom) Len() int {
	if a.bits == 0 {
		return 0
	}
	switch a.tag() {
	case tagInline:
		return capacity.InlineLen(a.bits)
	case tagStatic:
		return capacity.StaticLen(a.bits)
	case tagDynamic:
		return len(a.entry().text)
	}
	panic(invalidTag("Len", a))
}

// String returns the text of a.
//
// For dynamic and static atoms this returns the shared string without
// copying. For inline atoms it materializes a new string; use AppendTo to
// avoid that.
func (a Atom) String() string {
	if a.bits == 0 {
		return ""
	}
	switch a.tag() {
	case tagInline:
		buf, n := capacity.InlineBytes(a.bits)
		return string(buf[:n])
	case tagStatic:
		return unsafe.String((*byte)(a.ptr), capacity.StaticLen(a.bits)) //nolint:gosec // ptr/len come from a live string
	case tagDynamic:
		return a.entry().text
	}
	panic(invalidTag("String", a))
}

// GoString renders the quoted text, so %#v prints the atom like a string literal.
func (a Atom) GoString() string {
	return strconv.Quote(a.String())
}

// AppendTo appends the text of a to dst.
func (a Atom) AppendTo(dst []byte) []byte {
	if a.tag() == tagInline {
		buf, n := capacity.InlineBytes(a.bits)
		return append(dst, buf[:n]...)
	}
	return append(dst, a.String()...)
}

// Hash returns a 32-bit hash of the text. Equal atoms have equal hashes
// whatever their representation.
//
// For dynamic atoms this is the hash computed when the entry was created; it
// does not depend on aliases installed by later merges.
func (a Atom) Hash() uint32 {
	if a.bits == 0 {
		return 0
	}
	switch a.tag() {
	case tagInline:
		buf, n := capacity.InlineBytes(a.bits)
		return hash.Bytes(buf[:n])
	case tagStatic:
		return capacity.StaticHash(a.bits)
	case tagDynamic:
		return a.entry().hash
	}
	panic(invalidTag("Hash", a))
}

// Equal reports whether a and b hold the same text.
//
// Atoms issued by one store for the same text are pointer-equal. Atoms from
// different stores are compared through the alias installed by Merge, and
// fall back to comparing bytes when their stores were never merged.
func (a Atom) Equal(b Atom) bool {
	if a == b {
		return true
	}
	if a.bits == 0 || b.bits == 0 {
		return false
	}

	if a.tag() == tagDynamic && b.tag() == tagDynamic {
		return entriesEqual(a.entry(), b.entry())
	}

	// Mixed or non-dynamic representations: never assume disjointness.
	if a.Len() != b.Len() || a.Hash() != b.Hash() {
		return false
	}
	if a.tag() == tagInline && b.tag() == tagInline {
		// Same length and packed bytes would have made the words equal.
		return false
	}
	return a.String() == b.String()
}

// Canonical returns the representation of a that Merge has made canonical.
// For dynamic atoms issued by an absorbed store it returns the atom of the
// absorbing store's entry; every other atom is returned unchanged.
//
// After canonicalization, atoms of merged stores with the same text are ==
// and can be used directly as map keys.
func (a Atom) Canonical() Atom {
	if a.tag() != tagDynamic {
		return a
	}
	return fromEntry(a.entry().resolve())
}

// Compare returns an integer comparing the texts of a and b
// lexicographically. It can be passed to slices.SortFunc. The zero Atom
// sorts before every other atom, including the empty string.
func Compare(a, b Atom) int {
	switch {
	case a.bits == 0 && b.bits == 0:
		return 0
	case a.bits == 0:
		return -1
	case b.bits == 0:
		return 1
	}
	if a.Equal(b) {
		return 0
	}
	return strings.Compare(a.String(), b.String())
}

// MarshalText implements encoding.TextMarshaler.
func (a Atom) MarshalText() ([]byte, error) {
	return a.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// The decoded text is interned in the global store.
func (a *Atom) UnmarshalText(text []byte) error {
	*a = InternBytes(text)
	return nil
}

func invalidTag(op string, a Atom) *InvariantError {
	return invariant(op, nil, "invalid atom tag %d (bits %#x)", a.tag(), a.bits)
}

// checkRoundTrip verifies in hstrdebug builds that a decodes back to text.
func checkRoundTrip(op string, a Atom, text string) {
	if !debugAssertions {
		return
	}
	if got := a.String(); got != text {
		panic(invariant(op, nil, "round trip mismatch: got %q, want %q", got, text))
	}
	if a.Hash() != hash.String(text) {
		panic(invariant(op, nil, "hash mismatch for %q", text))
	}
}
