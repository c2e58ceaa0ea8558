// Package store provides the in-memory entity stores backing each module.
// A store owns its collection exclusively; collaborating modules read
// snapshots and look records up by id.
package store

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/optibiz/erp/internal/domain/shared"
)

// Record is anything held in a Store
type Record interface {
	GetID() string
}

// Store is an ordered, uniquely-keyed collection of records. Mutations
// replace the backing slice wholesale so snapshots never observe a
// partially-updated collection. Ids are issued from a monotonic counter
// seeded past the highest numeric suffix in the initial data, never
// derived from the current collection length.
type Store[T Record] struct {
	mu     sync.RWMutex
	prefix string
	items  []T
	index  map[string]int
	seq    int
}

// New creates a store seeded with the given initial records. The prefix
// is used when issuing ids for newly created records (e.g. "cust" + n).
func New[T Record](prefix string, seed []T) (*Store[T], error) {
	s := &Store[T]{
		prefix: prefix,
		items:  make([]T, len(seed)),
		index:  make(map[string]int, len(seed)),
	}
	copy(s.items, seed)
	for i, item := range s.items {
		id := item.GetID()
		if _, dup := s.index[id]; dup {
			return nil, shared.NewDomainError("DUPLICATE_ID", fmt.Sprintf("Duplicate id %q in initial data", id))
		}
		s.index[id] = i
		if n, ok := numericSuffix(id, prefix); ok && n > s.seq {
			s.seq = n
		}
	}
	return s, nil
}

// MustNew is New for known-good seed data
func MustNew[T Record](prefix string, seed []T) *Store[T] {
	s, err := New(prefix, seed)
	if err != nil {
		panic(err)
	}
	return s
}

// Snapshot returns a copy of the collection in insertion order
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the record with the given id, if present
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Len returns the number of records in the collection
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// NextID issues a fresh id. The counter only moves forward, so ids are
// never reused even if the collection were to shrink.
func (s *Store[T]) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.prefix + strconv.Itoa(s.seq)
}

// Append adds a new record at the end of the collection
func (s *Store[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := item.GetID()
	if _, dup := s.index[id]; dup {
		return shared.NewDomainError("DUPLICATE_ID", fmt.Sprintf("Record %q already exists", id))
	}
	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, item)
	s.index[id] = len(s.items) - 1
	return nil
}

// Replace swaps the record with the given id for a new value, keeping
// its position in the collection. The replacement must carry the same id.
func (s *Store[T]) Replace(id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return shared.ErrNotFound
	}
	if item.GetID() != id {
		return shared.NewDomainError("INVALID_INPUT", "Replacement record must keep its id")
	}
	next := make([]T, len(s.items))
	copy(next, s.items)
	next[i] = item
	s.items = next
	return nil
}

func numericSuffix(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}
