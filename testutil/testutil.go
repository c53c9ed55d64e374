package testutil

import (
	"math/rand"
	"sync"
)

const (
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	identStart   = "abcdefghijklmnopqrstuvwxyz_"
	identRest    = "abcdefghijklmnopqrstuvwxyz0123456789_"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Text returns a random alphanumeric text of exactly length bytes.
func (r *RNG) Text(length int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text(alphanumeric, alphanumeric, length)
}

// Identifier returns a random lowercase identifier of exactly length bytes.
func (r *RNG) Identifier(length int) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.text(identStart, identRest, length)
}

// Texts generates num random alphanumeric texts of exactly length bytes.
// Locks only once per call.
func (r *RNG) Texts(num, length int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	texts := make([]string, num)
	for i := range texts {
		texts[i] = r.text(alphanumeric, alphanumeric, length)
	}
	return texts
}

// Corpus returns size texts drawn uniformly, with repetition, from vocab.
// It models a token stream where the same words recur, which is the workload
// interning is meant for.
func (r *RNG) Corpus(size int, vocab []string) []string {
	if len(vocab) == 0 {
		return make([]string, size)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	corpus := make([]string, size)
	for i := range corpus {
		corpus[i] = vocab[r.rand.Intn(len(vocab))]
	}
	return corpus
}

// Shuffle returns a shuffled copy of texts.
func (r *RNG) Shuffle(texts []string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]string(nil), texts...)
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (r *RNG) text(first, rest string, length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	b[0] = first[r.rand.Intn(len(first))]
	for i := 1; i < length; i++ {
		b[i] = rest[r.rand.Intn(len(rest))]
	}
	return string(b)
}
