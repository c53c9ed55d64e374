package hstr

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MergeTwo(t *testing.T) {
	s1, atoms1 := storeWithAtoms("Hello, world!!!!")
	s2, atoms2 := storeWithAtoms("Hello, world!!!!")

	a1 := atoms1[0]
	a2 := atoms2[0]
	require.True(t, a1.Equal(a2))
	require.NotEqual(t, a1, a2)

	s1.Merge(s2)

	a3 := s1.Atom("Hello, world!!!!")

	assert.Equal(t, a1, a3, "merged store should give same address as the receiver")
	assert.Equal(t, a1.Hash(), a3.Hash(), "merged store should give same hash as the receiver")
	assert.NotEqual(t, a2, a3, "merged store should give different address than the absorbed store")

	assert.True(t, a1.Equal(a3))
	assert.True(t, a2.Equal(a3))
	assert.True(t, a3.Equal(a2))
	assert.Equal(t, a2.Hash(), a3.Hash())

	// The alias is what makes a2 equal in O(1): it points at a3's entry.
	assert.Same(t, a3.entry(), a2.entry().alias.Load())
}

func TestStore_MergeMany(t *testing.T) {
	s1, atoms1 := storeWithAtoms("Hello, world!!!!")
	s2, atoms2 := storeWithAtoms("Hello, world!!!!")
	s3, atoms3 := storeWithAtoms("Hi!", "Hi there, friend!")

	a1 := atoms1[0]
	a2 := atoms2[0]
	a3 := atoms3[0]
	a3long := atoms3[1]

	assert.True(t, a1.Equal(a2))
	assert.False(t, a1.Equal(a3))
	assert.False(t, a2.Equal(a3))

	s1.Merge(s2)
	s1.Merge(s3)

	a4 := s1.Atom("Hello, world!!!!")

	assert.Equal(t, a1, a4)
	assert.Equal(t, a1.Hash(), a4.Hash())
	assert.NotEqual(t, a2, a4)
	assert.NotEqual(t, a3, a4)

	assert.True(t, a1.Equal(a4))
	assert.True(t, a2.Equal(a4))
	assert.False(t, a3.Equal(a4))

	// Entries new to the receiver are created during the merge.
	assert.Equal(t, 2, s1.Len())
	assert.True(t, a3long.Equal(s1.Atom("Hi there, friend!")))
	assert.Equal(t, s1.Atom("Hi there, friend!"), a3long.Canonical())
}

func TestStore_MergeScenario(t *testing.T) {
	store := NewStore()
	assert.Equal(t, store.Atom("Hello, world!"), store.Atom("Hello, world!"))

	// "Hi!" is inline: equal words before and after any merge.
	store1 := NewStore()
	store2 := NewStore()
	hi1 := store1.Atom("Hi!")
	hi2 := store2.Atom("Hi!")
	assert.True(t, hi1.Equal(hi2))

	long1 := store1.Atom("Hi! (the long version)")
	long2 := store2.Atom("Hi! (the long version)")
	assert.NotEqual(t, long1, long2, "unequal words before merge")
	assert.True(t, long1.Equal(long2), "but equal atoms")

	store1.Merge(store2)

	canonical := store1.Atom("Hi! (the long version)")
	assert.Equal(t, long1, canonical)
	assert.True(t, long2.Equal(canonical), "the store2-era atom still equals the canonical one")
	assert.Equal(t, canonical, long2.Canonical())
	assert.Equal(t, hi1, hi2.Canonical(), "inline atoms are their own canonical form")
}

func TestStore_MergeChain(t *testing.T) {
	// c -> b -> a: atoms of c resolve through two aliases.
	a := NewStore()
	b := NewStore()
	c := NewStore()

	fromC := c.Atom("chained text value")
	fromB := b.Atom("chained text value")

	b.Merge(c)
	a.Merge(b)

	fromA := a.Atom("chained text value")

	assert.True(t, fromC.Equal(fromA))
	assert.True(t, fromB.Equal(fromA))
	assert.True(t, fromC.Equal(fromB))

	// Resolution compresses the chain so that c's entry points straight at a's.
	assert.Same(t, fromA.entry(), fromC.entry().alias.Load())
	assert.Equal(t, fromA, fromC.Canonical())
}

func TestStore_MergeSelfAndNil(t *testing.T) {
	s, atoms := storeWithAtoms("Hello, world!!!!")

	s.Merge(s)
	s.Merge(nil)

	assert.False(t, s.Merged())
	assert.Equal(t, atoms[0], s.Atom("Hello, world!!!!"))
}

func TestStore_MergeAbsorbedIntoGlobalEquality(t *testing.T) {
	s1 := NewStore()
	s2 := NewStore()

	g := Intern("shared with the global store")
	a := s2.Atom("shared with the global store")
	s1.Merge(s2)

	assert.True(t, g.Equal(a))
	assert.True(t, g.Equal(s1.Atom("shared with the global store")))
}

func TestStore_MergeMetricsAndLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}

	s1 := NewStore(WithLogger(logger), WithMetricsCollector(metrics))
	s2 := NewStore()
	s1.Atom("present in both stores")
	s2.Atom("present in both stores")
	s2.Atom("only in the second store")

	s1.Merge(s2)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.MergeCount)
	assert.Equal(t, int64(2), stats.MergedEntries)
	assert.Equal(t, int64(1), stats.MergeCreated)

	out := buf.String()
	assert.Contains(t, out, "store merged")
	assert.Contains(t, out, fmt.Sprintf("store_id=%d", s1.ID()))
	assert.Contains(t, out, fmt.Sprintf("from_store_id=%d", s2.ID()))
}

func TestStore_MergeConcurrentReaders(t *testing.T) {
	const n = 200

	s1 := NewStore()
	s2 := NewStore()

	texts := make([]string, n)
	before := make([]Atom, n)
	for i := range texts {
		texts[i] = fmt.Sprintf("concurrent text %04d", i)
		s1.Atom(texts[i])
		before[i] = s2.Atom(texts[i])
	}

	// Readers compare pre-merge atoms while the merge installs aliases.
	var wg sync.WaitGroup
	start := make(chan struct{})
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			for i := range before {
				other := Intern(texts[i])
				assert.True(t, before[i].Equal(other))
			}
		}()
	}

	close(start)
	s1.Merge(s2)
	wg.Wait()

	for i := range before {
		assert.Equal(t, s1.Atom(texts[i]), before[i].Canonical())
	}
}
