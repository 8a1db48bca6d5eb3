package store

import (
	"sort"
	"sync"
)

// CachedStore wraps a Store and mirrors per-type code sets in memory.
// Reads for a type already in the mirror are answered without touching the
// backend; writes update the mirror and write through to the backend.
// Counter operations and Types are never cached and always delegate.
//
// The mirror belongs to this decorator instance. Two CachedStores wrapping
// the same backend do not see each other's writes until they fetch the
// affected type from the backend themselves; there is no cross-instance
// invalidation.
type CachedStore struct {
	mu      sync.RWMutex
	backend Store
	mirror  map[string]map[string]struct{}
}

// NewCachedStore creates a caching decorator over backend. The decorator
// references the backend, it does not own it; the backend remains usable
// directly (at the cost of cache staleness for types already mirrored).
func NewCachedStore(backend Store) *CachedStore {
	return &CachedStore{
		backend: backend,
		mirror:  make(map[string]map[string]struct{}),
	}
}

// Backend returns the wrapped store.
func (s *CachedStore) Backend() Store {
	return s.backend
}

// prime ensures the type's code set is mirrored, fetching it from the
// backend if this is the first time the type is touched. Callers must hold
// the write lock.
func (s *CachedStore) prime(idType string) (map[string]struct{}, error) {
	if set, ok := s.mirror[idType]; ok {
		return set, nil
	}
	codes, err := s.backend.Codes(idType)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	s.mirror[idType] = set
	return set, nil
}

// Add writes the code through to the backend and records it in the
// mirror. The type's mirror is primed first so that subsequent reads need
// no backend fetch.
func (s *CachedStore) Add(idType, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.prime(idType)
	if err != nil {
		return err
	}
	if err := s.backend.Add(idType, code); err != nil {
		return err
	}
	set[code] = struct{}{}
	return nil
}

// Remove deletes the code from the backend and the mirror.
func (s *CachedStore) Remove(idType, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.prime(idType)
	if err != nil {
		return err
	}
	if err := s.backend.Remove(idType, code); err != nil {
		return err
	}
	delete(set, code)
	return nil
}

// Contains answers from the mirror, fetching the type's code set from the
// backend on first access.
func (s *CachedStore) Contains(idType, code string) (bool, error) {
	s.mu.RLock()
	if set, ok := s.mirror[idType]; ok {
		_, present := set[code]
		s.mu.RUnlock()
		return present, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.prime(idType)
	if err != nil {
		return false, err
	}
	_, present := set[code]
	return present, nil
}

// Codes answers from the mirror, fetching the type's code set from the
// backend on first access. The result is sorted.
func (s *CachedStore) Codes(idType string) ([]string, error) {
	s.mu.RLock()
	if set, ok := s.mirror[idType]; ok {
		codes := sortedCodes(set)
		s.mu.RUnlock()
		return codes, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	set, err := s.prime(idType)
	if err != nil {
		return nil, err
	}
	return sortedCodes(set), nil
}

// Types always delegates; the mirror does not track the universe of types.
func (s *CachedStore) Types() ([]string, error) {
	return s.backend.Types()
}

// Counter delegates; counters are never cached.
func (s *CachedStore) Counter(idType string) (int64, error) {
	return s.backend.Counter(idType)
}

// SetCounter delegates; counters are never cached.
func (s *CachedStore) SetCounter(idType string, value int64) error {
	return s.backend.SetCounter(idType, value)
}

// Clear wipes the backend and drops the mirror, so a cleared backend is
// never shadowed by stale cached codes.
func (s *CachedStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Clear(); err != nil {
		return err
	}
	s.mirror = make(map[string]map[string]struct{})
	return nil
}

func sortedCodes(set map[string]struct{}) []string {
	codes := make([]string, 0, len(set))
	for code := range set {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Ensure CachedStore implements Store.
var _ Store = (*CachedStore)(nil)
