package hstr

import (
	"iter"
	"strings"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/hstr/internal/hash"
)

var lastStoreID atomic.Uint32

// Store is a deduplicating table of interned strings.
//
// Within one store, every text gets exactly one entry, so atoms issued by the
// same store for the same text are identical values. Stores built
// independently (one per goroutine, per file, per compilation unit) can be
// combined with Merge without invalidating atoms they already issued.
//
// Stores must be created with NewStore; a zero Store panics on first use.
//
// A Store is not safe for concurrent use. Atoms issued by it are: they can be
// copied, compared and dropped from any goroutine, and they stay valid after
// the store itself is dropped.
type Store struct {
	id     uint32
	data   map[uint32][]*entry
	count  int
	merged bool
	into   uint32
	opts   options
	log    *Logger
}

// NewStore creates an empty store with a process-unique, non-zero id.
func NewStore(optFns ...Option) *Store {
	opts := applyOptions(optFns)

	id := lastStoreID.Add(1)
	if id == 0 {
		panic(invariant("NewStore", nil, "store id space exhausted"))
	}

	return &Store{
		id:   id,
		data: make(map[uint32][]*entry, opts.capacity),
		opts: opts,
		log:  opts.logger.WithStoreID(id),
	}
}

// ID returns the store's identity.
func (s *Store) ID() uint32 {
	return s.id
}

// Len returns the number of entries in the store. Inline atoms are not stored
// and not counted.
func (s *Store) Len() int {
	return s.count
}

// Merged reports whether s has been consumed by Merge.
func (s *Store) Merged() bool {
	return s.merged
}

// Atom interns text and returns its atom.
//
// Text shorter than MaxInlineLen produces an inline atom without a lookup.
// Longer text is looked up by hash; on a miss the store keeps text itself as
// the entry's storage, so no copy is made.
func (s *Store) Atom(text string) Atom {
	if len(text) < MaxInlineLen {
		return inline(text)
	}
	s.checkLive("Atom")

	e, _ := s.insert(text, hash.String(text), true)
	a := fromEntry(e)
	checkRoundTrip("Atom", a, text)
	return a
}

// AtomBytes interns the text in b. The lookup does not allocate; b is copied
// only when the text is new to the store. b may be reused after the call.
func (s *Store) AtomBytes(b []byte) Atom {
	if len(b) < MaxInlineLen {
		return inline(string(b))
	}
	s.checkLive("AtomBytes")

	view := unsafe.String(unsafe.SliceData(b), len(b)) //nolint:gosec // cloned before it is retained
	e, _ := s.insert(view, hash.String(view), false)
	a := fromEntry(e)
	checkRoundTrip("AtomBytes", a, view)
	return a
}

// insert returns the entry for text, creating it when absent. owned reports
// whether text may be retained as is.
func (s *Store) insert(text string, h uint32, owned bool) (e *entry, created bool) {
	bucket := s.data[h]
	for _, cur := range bucket {
		if cur.hash == h && cur.text == text {
			s.opts.metricsCollector.RecordLookup(true)
			return cur, false
		}
	}
	s.opts.metricsCollector.RecordLookup(false)

	if !owned {
		text = strings.Clone(text)
	}
	e = newEntry(text, h, s.id)
	s.data[h] = append(bucket, e)
	s.count++
	return e, true
}

// All returns an iterator over one atom per entry, in no particular order.
func (s *Store) All() iter.Seq[Atom] {
	return func(yield func(Atom) bool) {
		for _, bucket := range s.data {
			for _, e := range bucket {
				if !yield(fromEntry(e)) {
					return
				}
			}
		}
	}
}

// StoreStats describes the shape of a store's table.
type StoreStats struct {
	Entries   int
	Buckets   int
	MaxBucket int // longest collision chain
}

// Stats returns table statistics.
func (s *Store) Stats() StoreStats {
	st := StoreStats{
		Entries: s.count,
		Buckets: len(s.data),
	}
	for _, bucket := range s.data {
		st.MaxBucket = max(st.MaxBucket, len(bucket))
	}
	return st
}

func (s *Store) checkLive(op string) {
	if s.id == 0 {
		panic(invariant(op, nil, "store not created with NewStore"))
	}
	if s.merged {
		panic(invariant(op, nil, "store %d was merged into store %d", s.id, s.into))
	}
}
