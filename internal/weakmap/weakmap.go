package weakmap

import (
	"runtime"
	"sync"
	"weak"

	"golang.org/x/sys/cpu"
)

const numShards = 64

// Table maps a 32-bit hash to a bucket of weakly held values.
type Table[T any] struct {
	shards [numShards]shard[T]
}

type shard[T any] struct {
	_       cpu.CacheLinePad
	mu      sync.RWMutex
	buckets map[uint32][]weak.Pointer[T]
}

// New creates an empty table. capacity is a hint for the total number of
// buckets and is divided evenly across shards.
func New[T any](capacity int) *Table[T] {
	perShard := capacity / numShards
	if perShard < 1 {
		perShard = 1
	}

	t := &Table[T]{}
	for i := range numShards {
		t.shards[i].buckets = make(map[uint32][]weak.Pointer[T], perShard)
	}
	return t
}

func (t *Table[T]) shard(hash uint32) *shard[T] {
	return &t.shards[hash%numShards]
}

// LoadOrStore returns the live value in hash's bucket for which match reports
// true. If there is none, it stores the value returned by create and returns
// it with loaded == false. create is called at most once, under the shard's
// write lock.
func (t *Table[T]) LoadOrStore(hash uint32, match func(*T) bool, create func() *T) (v *T, loaded bool) {
	s := t.shard(hash)

	s.mu.RLock()
	v = s.find(hash, match)
	s.mu.RUnlock()
	if v != nil {
		return v, true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have inserted between the two locks.
	if v = s.find(hash, match); v != nil {
		return v, true
	}

	v = create()
	wp := weak.Make(v)

	bucket := s.buckets[hash]
	replaced := false
	for i := range bucket {
		if bucket[i].Value() == nil {
			bucket[i] = wp
			replaced = true
			break
		}
	}
	if !replaced {
		s.buckets[hash] = append(bucket, wp)
	}

	runtime.AddCleanup(v, s.prune, hash)

	return v, false
}

// Len returns the number of live values. It is O(n) and intended for tests
// and diagnostics.
func (t *Table[T]) Len() int {
	n := 0
	for i := range numShards {
		s := &t.shards[i]
		s.mu.RLock()
		for _, bucket := range s.buckets {
			for _, wp := range bucket {
				if wp.Value() != nil {
					n++
				}
			}
		}
		s.mu.RUnlock()
	}
	return n
}

// Slots returns the number of occupied slots, live or not yet pruned.
func (t *Table[T]) Slots() int {
	n := 0
	for i := range numShards {
		s := &t.shards[i]
		s.mu.RLock()
		for _, bucket := range s.buckets {
			n += len(bucket)
		}
		s.mu.RUnlock()
	}
	return n
}

func (s *shard[T]) find(hash uint32, match func(*T) bool) *T {
	for _, wp := range s.buckets[hash] {
		if v := wp.Value(); v != nil && match(v) {
			return v
		}
	}
	return nil
}

// prune drops dead slots from a bucket. It runs on the cleanup goroutine
// after a value stored in that bucket has been collected.
func (s *shard[T]) prune(hash uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.buckets[hash]
	live := bucket[:0]
	for _, wp := range bucket {
		if wp.Value() != nil {
			live = append(live, wp)
		}
	}
	clear(bucket[len(live):])

	if len(live) == 0 {
		delete(s.buckets, hash)
		return
	}
	s.buckets[hash] = live
}
