package hstr

import (
	"strings"
	"sync"
	"unsafe"

	"github.com/hupe1980/hstr/internal/hash"
	"github.com/hupe1980/hstr/internal/weakmap"
)

// globalCapacity is the initial bucket hint of the global table.
const globalCapacity = 4096

var globalTable = sync.OnceValue(func() *weakmap.Table[entry] {
	return weakmap.New[entry](globalCapacity)
})

// Intern interns text in the process-wide global store.
//
// It behaves like Store.Atom but is safe for concurrent use and needs no
// Merge: there is only one global table. The table holds its entries weakly,
// so an entry lives exactly as long as some atom (or alias) refers to it.
//
// Prefer a Store in code that creates many atoms on one goroutine; it avoids
// the shard lock and the weak-pointer upgrade.
func Intern(text string) Atom {
	if len(text) < MaxInlineLen {
		return inline(text)
	}

	a := fromEntry(globalInsert(text, hash.String(text), true))
	checkRoundTrip("Intern", a, text)
	return a
}

// InternBytes is Intern for a byte slice. b is copied only when its text is
// not already interned.
func InternBytes(b []byte) Atom {
	if len(b) < MaxInlineLen {
		return inline(string(b))
	}

	view := unsafe.String(unsafe.SliceData(b), len(b)) //nolint:gosec // cloned before it is retained
	a := fromEntry(globalInsert(view, hash.String(view), false))
	checkRoundTrip("InternBytes", a, view)
	return a
}

func globalInsert(text string, h uint32, owned bool) *entry {
	e, _ := globalTable().LoadOrStore(h,
		func(e *entry) bool {
			return e.hash == h && e.text == text
		},
		func() *entry {
			if !owned {
				text = strings.Clone(text)
			}
			return newEntry(text, h, 0)
		},
	)
	return e
}
