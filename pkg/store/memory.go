package store

import (
	"sort"
	"sync"
)

// MemoryStore is a thread-safe in-memory implementation of Store. It is
// the baseline backend: no I/O, no failure modes, state lives and dies
// with the process.
type MemoryStore struct {
	mu       sync.RWMutex
	ids      map[string]map[string]struct{}
	counters map[string]int64
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ids:      make(map[string]map[string]struct{}),
		counters: make(map[string]int64),
	}
}

// Add inserts a code into the type's code set. Idempotent.
func (s *MemoryStore) Add(idType, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	codes, ok := s.ids[idType]
	if !ok {
		codes = make(map[string]struct{})
		s.ids[idType] = codes
	}
	codes[code] = struct{}{}
	return nil
}

// Remove deletes a code from the type's code set. Removing an absent code
// is a no-op.
func (s *MemoryStore) Remove(idType, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	codes, ok := s.ids[idType]
	if !ok {
		return nil
	}
	delete(codes, code)
	if len(codes) == 0 {
		delete(s.ids, idType)
	}
	return nil
}

// Contains reports whether the code is present under the type.
func (s *MemoryStore) Contains(idType, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[idType][code]
	return ok, nil
}

// Codes returns all codes registered under the type, sorted.
func (s *MemoryStore) Codes(idType string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.ids[idType]))
	for code := range s.ids[idType] {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// Types returns all types with at least one registered code, sorted.
func (s *MemoryStore) Types() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	types := make([]string, 0, len(s.ids))
	for idType := range s.ids {
		types = append(types, idType)
	}
	sort.Strings(types)
	return types, nil
}

// Counter returns the type's counter value, 0 if never set.
func (s *MemoryStore) Counter(idType string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[idType], nil
}

// SetCounter stores the type's counter value.
func (s *MemoryStore) SetCounter(idType string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[idType] = value
	return nil
}

// Clear wipes all codes and counters.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]map[string]struct{})
	s.counters = make(map[string]int64)
	return nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
