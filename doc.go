// Package hstr provides atoms: immutable interned strings with cheap
// equality, lock-free copying, small-string inlining, and mergeable
// interning tables.
//
// # Quick Start
//
// Intern through a Store when one goroutine creates many atoms:
//
//	store := hstr.NewStore()
//	a := store.Atom("Hello, world!")
//	b := store.Atom("Hello, world!")
//	a == b // true: same store, same entry
//
// Or through the global store from anywhere:
//
//	c := hstr.Intern("Hello, world!")
//	a.Equal(c) // true: different tables, same text
//
// # Representations
//
// Strings shorter than MaxInlineLen (8 bytes) are packed into the atom and
// never touch a table. Longer strings become dynamic atoms pointing at a
// shared entry. Static returns atoms for program-lifetime constants without
// a lookup.
//
// # Merging
//
// Stores are not safe for concurrent use. Build one per goroutine and merge:
//
//	s1 := hstr.NewStore()
//	s2 := hstr.NewStore()
//	old := s2.Atom("Hello, world!")
//	s1.Merge(s2) // s2 is consumed
//	cur := s1.Atom("Hello, world!")
//	old.Equal(cur) // true, in O(1) through the alias merge installed
//
// InternAll packages this pattern for a slice of texts.
//
// # Equality and Hashing
//
// Equal compares text. It is a pointer comparison for atoms of one store,
// one alias hop for atoms of merged stores, and a byte comparison only when
// the hashes of two never-merged stores' entries collide or match. Hash is
// consistent with Equal across all representations.
//
// The == operator compares representations. Use Canonical before using
// atoms as map keys across merged stores.
//
// # Memory
//
// Entries are ordinary Go values reclaimed by the garbage collector once no
// atom, store, or alias refers to them. Stores hold their entries strongly;
// the global store holds them weakly. Nothing is ever evicted from a live
// store.
package hstr
