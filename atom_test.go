package hstr

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hstr/internal/hash"
)

func TestAtom_RoundTrip(t *testing.T) {
	texts := []string{
		"",
		"a",
		"Hi!",
		"1234567",
		"12345678",
		"Hello, world!",
		"ünïcödé ✓",
		strings.Repeat("long text ", 100),
	}

	for _, text := range texts {
		t.Run(fmt.Sprintf("len=%d", len(text)), func(t *testing.T) {
			store := NewStore()
			for _, a := range []Atom{store.Atom(text), store.AtomBytes([]byte(text)), Intern(text), InternBytes([]byte(text)), Static(text)} {
				assert.Equal(t, text, a.String())
				assert.Equal(t, len(text), a.Len())
				assert.Equal(t, hash.String(text), a.Hash())
				assert.Equal(t, []byte(text), a.AppendTo(nil))
			}
		})
	}
}

func TestAtom_InlineBoundary(t *testing.T) {
	store := NewStore()

	short := strings.Repeat("x", MaxInlineLen-1)
	a := store.Atom(short)
	assert.Equal(t, KindInline, a.Kind())
	assert.Nil(t, a.ptr, "inline atoms must not reference an entry")
	assert.Equal(t, 0, store.Len())

	exact := strings.Repeat("x", MaxInlineLen)
	b := store.Atom(exact)
	assert.Equal(t, KindDynamic, b.Kind())
	assert.Equal(t, 1, store.Len())

	assert.Equal(t, KindInline, Intern(short).Kind())
	assert.Equal(t, KindDynamic, Intern(exact).Kind())
	assert.Equal(t, KindInline, Static(short).Kind())
	assert.Equal(t, KindStatic, Static(exact).Kind())
}

func TestAtom_Zero(t *testing.T) {
	var zero Atom

	assert.True(t, zero.IsZero())
	assert.Equal(t, KindInvalid, zero.Kind())
	assert.Equal(t, "", zero.String())
	assert.Equal(t, 0, zero.Len())
	assert.True(t, zero.Equal(Atom{}))

	empty := Intern("")
	assert.False(t, empty.IsZero(), "the empty string is a real atom")
	assert.False(t, zero.Equal(empty))
	assert.False(t, empty.Equal(zero))
}

func TestAtom_TagNeverZero(t *testing.T) {
	store := NewStore()
	for _, a := range []Atom{Intern(""), store.Atom("Hello, world!"), Static("a static string")} {
		assert.NotZero(t, a.bits&3)
	}
}

func TestAtom_EqualAcrossRepresentations(t *testing.T) {
	text := "Hello, world!!!!"
	store := NewStore()

	atoms := []Atom{
		store.Atom(text),
		NewStore().Atom(text),
		Intern(text),
		Static(text),
		Static(strings.Clone(text)),
	}

	for i, a := range atoms {
		for j, b := range atoms {
			assert.True(t, a.Equal(b), "%d (%s) vs %d (%s)", i, a.Kind(), j, b.Kind())
			assert.Equal(t, a.Hash(), b.Hash())
			assert.Equal(t, 0, Compare(a, b))
		}
	}
}

func TestAtom_NotEqual(t *testing.T) {
	store := NewStore()
	pairs := [][2]Atom{
		{store.Atom("Hello, world!"), store.Atom("Hello, world?")},
		{store.Atom("Hello, world!"), Intern("Hello, world?")},
		{Static("Hello, world!"), Static("Hello, world?")},
		{Intern("abc"), Intern("abd")},
		{Intern("abc"), Intern("abcdefghij")},
		{Static("abcdefghij"), Intern("abc")},
	}

	for _, p := range pairs {
		assert.False(t, p[0].Equal(p[1]), "%q vs %q", p[0], p[1])
		assert.False(t, p[1].Equal(p[0]), "%q vs %q", p[1], p[0])
	}
}

func TestAtom_EqualDynamicNoAlias(t *testing.T) {
	// Hand-built entries simulate representations the constructors never
	// produce, such as a short text stored dynamically.
	e1 := newEntry("Hi!", hash.String("Hi!"), 0)
	e2 := newEntry("Hi!", hash.String("Hi!"), 0)
	dyn1, dyn2 := fromEntry(e1), fromEntry(e2)

	assert.True(t, dyn1.Equal(dyn2))
	assert.True(t, dyn1.Equal(Intern("Hi!")), "inline vs dynamic falls back to content")
	assert.True(t, Intern("Hi!").Equal(dyn1))
	assert.Equal(t, Intern("Hi!").Hash(), dyn1.Hash())
}

func TestAtom_Format(t *testing.T) {
	a := Intern("Hello, world!")

	assert.Equal(t, "Hello, world!", fmt.Sprint(a))
	assert.Equal(t, "Hello, world!", fmt.Sprintf("%s", a))
	assert.Equal(t, `"Hello, world!"`, fmt.Sprintf("%#v", a))
	assert.Equal(t, `"Hi"`, fmt.Sprintf("%#v", Intern("Hi")))
}

func TestAtom_Compare(t *testing.T) {
	store := NewStore()
	atoms := []Atom{store.Atom("pear"), Intern("apple and more"), Static("banana split"), store.Atom("fig")}

	slices.SortFunc(atoms, Compare)

	got := make([]string, len(atoms))
	for i, a := range atoms {
		got[i] = a.String()
	}
	assert.Equal(t, []string{"apple and more", "banana split", "fig", "pear"}, got)
}

func TestAtom_JSON(t *testing.T) {
	type doc struct {
		Name Atom   `json:"name"`
		Tags []Atom `json:"tags"`
	}

	in := doc{Name: Intern("Hello, world!"), Tags: []Atom{Intern("a"), Static("a static tag")}}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Hello, world!","tags":["a","a static tag"]}`, string(data))

	var out doc
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.Name.Equal(out.Name))
	assert.Equal(t, in.Name, out.Name, "decoding interns through the global store")
	require.Len(t, out.Tags, 2)
	assert.True(t, in.Tags[1].Equal(out.Tags[1]))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "inline", KindInline.String())
	assert.Equal(t, "static", KindStatic.String())
	assert.Equal(t, "dynamic", KindDynamic.String())
	assert.Equal(t, "invalid", KindInvalid.String())
}

func TestCompare_Zero(t *testing.T) {
	var zero Atom
	empty := Intern("")

	assert.Equal(t, 0, Compare(zero, Atom{}))
	assert.Equal(t, -1, Compare(zero, empty))
	assert.Equal(t, 1, Compare(empty, zero))
	assert.Equal(t, -1, Compare(zero, Intern("Hello, world!")))

	atoms := []Atom{Intern("b"), empty, zero, Intern("a")}
	slices.SortFunc(atoms, Compare)
	assert.Equal(t, []Atom{zero, empty, Intern("a"), Intern("b")}, atoms)
}
