package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
)

// fileDocument is the on-disk shape of a FileStore: one JSON document
// holding every code set and counter.
type fileDocument struct {
	IDs      map[string][]string `json:"ids"`
	Counters map[string]int64    `json:"counters"`
}

// FileStore is a Store persisted to a single JSON file. State is loaded
// lazily on the first operation; every mutation re-serializes and
// overwrites the whole file before returning.
//
// A file that is absent, unreadable, or malformed on load initializes an
// empty store (the condition is logged, not returned). Write failures are
// returned to the caller. Writes go directly to the target path with no
// temp-file-and-rename step, so a crash mid-write can corrupt the file;
// callers needing stronger guarantees should keep backups of the file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger

	loaded   bool
	ids      map[string]map[string]struct{}
	counters map[string]int64
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithLogger sets the logger used to report absorbed load failures.
func WithLogger(logger *slog.Logger) FileStoreOption {
	return func(s *FileStore) {
		s.logger = logger
	}
}

// NewFileStore creates a FileStore backed by the file at path. The file is
// not touched until the first operation.
func NewFileStore(path string, opts ...FileStoreOption) *FileStore {
	s := &FileStore{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file path backing this store.
func (s *FileStore) Path() string {
	return s.path
}

// load reads the backing file into memory. Runs at most once; a missing,
// unreadable, or malformed file yields an empty store.
func (s *FileStore) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.ids = make(map[string]map[string]struct{})
	s.counters = make(map[string]int64)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("identifier store unreadable, starting empty",
				"path", s.path, "error", err)
		}
		return
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("identifier store malformed, starting empty",
			"path", s.path, "error", err)
		return
	}

	for idType, codes := range doc.IDs {
		set := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			set[code] = struct{}{}
		}
		if len(set) > 0 {
			s.ids[idType] = set
		}
	}
	for idType, value := range doc.Counters {
		s.counters[idType] = value
	}
}

// save rewrites the whole backing file from in-memory state.
func (s *FileStore) save() error {
	doc := fileDocument{
		IDs:      make(map[string][]string, len(s.ids)),
		Counters: s.counters,
	}
	for idType, set := range s.ids {
		codes := make([]string, 0, len(set))
		for code := range set {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		doc.IDs[idType] = codes
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode identifier store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write identifier store: %w", err)
	}
	return nil
}

// Add inserts a code into the type's code set and rewrites the file.
func (s *FileStore) Add(idType, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	codes, ok := s.ids[idType]
	if !ok {
		codes = make(map[string]struct{})
		s.ids[idType] = codes
	}
	codes[code] = struct{}{}
	return s.save()
}

// Remove deletes a code from the type's code set and rewrites the file.
func (s *FileStore) Remove(idType, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	codes, ok := s.ids[idType]
	if !ok {
		return nil
	}
	if _, present := codes[code]; !present {
		return nil
	}
	delete(codes, code)
	if len(codes) == 0 {
		delete(s.ids, idType)
	}
	return s.save()
}

// Contains reports whether the code is present under the type.
func (s *FileStore) Contains(idType, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	_, ok := s.ids[idType][code]
	return ok, nil
}

// Codes returns all codes registered under the type, sorted.
func (s *FileStore) Codes(idType string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	codes := make([]string, 0, len(s.ids[idType]))
	for code := range s.ids[idType] {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// Types returns all types with at least one registered code, sorted.
func (s *FileStore) Types() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	types := make([]string, 0, len(s.ids))
	for idType := range s.ids {
		types = append(types, idType)
	}
	sort.Strings(types)
	return types, nil
}

// Counter returns the type's counter value, 0 if never set.
func (s *FileStore) Counter(idType string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	return s.counters[idType], nil
}

// SetCounter stores the type's counter value and rewrites the file.
func (s *FileStore) SetCounter(idType string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	s.counters[idType] = value
	return s.save()
}

// Clear wipes all codes and counters and rewrites the file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	s.ids = make(map[string]map[string]struct{})
	s.counters = make(map[string]int64)
	return s.save()
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
