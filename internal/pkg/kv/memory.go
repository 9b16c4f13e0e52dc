package kv

import (
	"cmp"
	"sort"
)

// memOrderedMap keeps a slice sorted by key; probes are binary searches.
type memOrderedMap[K cmp.Ordered, V any] struct {
	entries []Entry[K, V]
}

// NewOrderedMap claims prefix on store and returns an empty ordered map.
func NewOrderedMap[K cmp.Ordered, V any](store *Store, prefix string) (OrderedMap[K, V], error) {
	if err := store.claim(prefix); err != nil {
		return nil, err
	}
	return &memOrderedMap[K, V]{}, nil
}

// search returns the index of the first entry with key >= k.
func (m *memOrderedMap[K, V]) search(k K) int {
	return sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].Key >= k
	})
}

func (m *memOrderedMap[K, V]) Put(key K, value V) {
	i := m.search(key)
	if i < len(m.entries) && m.entries[i].Key == key {
		m.entries[i].Value = value
		return
	}
	m.entries = append(m.entries, Entry[K, V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = Entry[K, V]{Key: key, Value: value}
}

func (m *memOrderedMap[K, V]) Get(key K) (V, bool) {
	i := m.search(key)
	if i < len(m.entries) && m.entries[i].Key == key {
		return m.entries[i].Value, true
	}
	var zero V
	return zero, false
}

func (m *memOrderedMap[K, V]) Delete(key K) {
	i := m.search(key)
	if i < len(m.entries) && m.entries[i].Key == key {
		m.entries = append(m.entries[:i], m.entries[i+1:]...)
	}
}

func (m *memOrderedMap[K, V]) HigherEntry(k K) (Entry[K, V], bool) {
	i := m.search(k)
	// skip an exact match: the probe is strictly greater
	if i < len(m.entries) && m.entries[i].Key == k {
		i++
	}
	if i < len(m.entries) {
		return m.entries[i], true
	}
	return Entry[K, V]{}, false
}

func (m *memOrderedMap[K, V]) LowerEntry(k K) (Entry[K, V], bool) {
	i := m.search(k)
	if i == 0 {
		return Entry[K, V]{}, false
	}
	return m.entries[i-1], true
}

func (m *memOrderedMap[K, V]) Len() int {
	return len(m.entries)
}

type memScalarMap[K comparable, V any] struct {
	items map[K]V
}

func NewScalarMap[K comparable, V any](store *Store, prefix string) (ScalarMap[K, V], error) {
	if err := store.claim(prefix); err != nil {
		return nil, err
	}
	return &memScalarMap[K, V]{items: make(map[K]V)}, nil
}

func (m *memScalarMap[K, V]) Put(key K, value V) {
	m.items[key] = value
}

func (m *memScalarMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.items[key]
	return v, ok
}

func (m *memScalarMap[K, V]) Delete(key K) {
	delete(m.items, key)
}

func (m *memScalarMap[K, V]) Len() int {
	return len(m.items)
}

type memSet struct {
	members map[string]struct{}
}

func NewSet(store *Store, prefix string) (Set, error) {
	if err := store.claim(prefix); err != nil {
		return nil, err
	}
	return &memSet{members: make(map[string]struct{})}, nil
}

func (s *memSet) Add(member string) {
	s.members[member] = struct{}{}
}

func (s *memSet) Contains(member string) bool {
	_, ok := s.members[member]
	return ok
}

func (s *memSet) Remove(member string) {
	delete(s.members, member)
}

func (s *memSet) Len() int {
	return len(s.members)
}
