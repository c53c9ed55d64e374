package hstr

import (
	"sync/atomic"
)

// maxAliasHops bounds alias resolution. Every hop moves to a store that
// absorbed the previous one, so a longer chain can only be a cycle.
const maxAliasHops = 1 << 16

// entry is the shared record behind a dynamic atom.
//
// Only alias is ever written after construction.
type entry struct {
	text    string
	hash    uint32
	storeID uint32 // 0 for entries created by the global store
	alias   atomic.Pointer[entry]
}

func newEntry(text string, hash, storeID uint32) *entry {
	return &entry{
		text:    text,
		hash:    hash,
		storeID: storeID,
	}
}

// resolve follows the alias chain to the canonical entry. When the chain is
// longer than one hop, e's alias is swung straight to the root so later
// lookups take a single hop.
func (e *entry) resolve() *entry {
	next := e.alias.Load()
	if next == nil {
		return e
	}

	root := next
	for hops := 1; ; hops++ {
		n := root.alias.Load()
		if n == nil {
			break
		}
		if hops >= maxAliasHops || n == e {
			panic(invariant("resolve", nil, "alias cycle at %q after %d hops", e.text, hops))
		}
		root = n
	}

	if root != next {
		e.alias.CompareAndSwap(next, root)
	}
	return root
}

// entriesEqual reports whether two dynamic entries hold the same text.
func entriesEqual(x, y *entry) bool {
	if x == y {
		return true
	}
	if x.hash != y.hash {
		return false
	}

	rx, ry := x.resolve(), y.resolve()
	if rx == ry {
		return true
	}

	// A store never holds two entries for the same text.
	if rx.storeID != 0 && rx.storeID == ry.storeID {
		return false
	}

	return rx.text == ry.text
}
