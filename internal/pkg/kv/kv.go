// Package kv is the interface to the storage substrate the booking
// engine runs on. The real substrate (an ordered persistent key/value
// store supplied by the host platform) is out of scope; collections are
// specified here at their interface and backed in-memory. Every
// collection is created against a Store under a distinct prefix so
// collections never collide in the underlying key space.
package kv

import (
	"cmp"
	"errors"
	"sync"
)

var ErrPrefixTaken = errors.New("storage prefix already in use")

// Entry is a key/value pair surfaced by ordered-map probes.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// OrderedMap keeps entries sorted by key and answers nearest-neighbour
// probes in logarithmic time.
type OrderedMap[K cmp.Ordered, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Delete(key K)
	// HigherEntry returns the entry with the smallest key strictly
	// greater than k.
	HigherEntry(k K) (Entry[K, V], bool)
	// LowerEntry returns the entry with the largest key strictly less
	// than k.
	LowerEntry(k K) (Entry[K, V], bool)
	Len() int
}

// ScalarMap is a plain keyed collection with no ordering guarantees.
type ScalarMap[K comparable, V any] interface {
	Put(key K, value V)
	Get(key K) (V, bool)
	Delete(key K)
	Len() int
}

// Set holds unique string members.
type Set interface {
	Add(member string)
	Contains(member string) bool
	Remove(member string)
	Len() int
}

// Store hands out prefix-namespaced collections. A prefix may be
// claimed once per store; claiming it twice is a wiring bug.
type Store struct {
	mu       sync.Mutex
	prefixes map[string]struct{}
}

func NewStore() *Store {
	return &Store{prefixes: make(map[string]struct{})}
}

func (s *Store) claim(prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.prefixes[prefix]; taken {
		return ErrPrefixTaken
	}
	s.prefixes[prefix] = struct{}{}
	return nil
}
