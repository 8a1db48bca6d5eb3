package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/staylorx/id-registry/pkg/identifier"
	"github.com/staylorx/id-registry/pkg/store"
)

// Validator decides whether a proposed code is well-formed for its type.
type Validator interface {
	Validate(code string) bool
}

// ValidatorFunc adapts a plain predicate to the Validator interface.
type ValidatorFunc func(code string) bool

// Validate calls f(code).
func (f ValidatorFunc) Validate(code string) bool {
	return f(code)
}

// Registry enforces global uniqueness of typed identifiers over one
// storage backend. All operations are safe for concurrent use; a single
// mutex serializes them so duplicate checks, cache fills, and counter
// updates never interleave across goroutines.
type Registry struct {
	mu         sync.Mutex
	store      store.Store
	validators map[string]Validator
	generators map[string]GeneratorKind
}

// New creates a Registry over the given storage backend.
func New(s store.Store) *Registry {
	return &Registry{
		store:      s,
		validators: make(map[string]Validator),
		generators: make(map[string]GeneratorKind),
	}
}

// Register registers every pair in the set, in the set's order. For each
// pair the type's validator (if any) runs first, then the duplicate check,
// then the store write. The first failing pair aborts the call with a
// ValidationError or DuplicateError; pairs added earlier in the same call
// remain registered.
func (r *Registry) Register(set *identifier.Set) error {
	if set == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range set.Pairs() {
		if v, ok := r.validators[p.Type]; ok && !v.Validate(p.Code) {
			return &ValidationError{Type: p.Type, Code: p.Code}
		}
		exists, err := r.store.Contains(p.Type, p.Code)
		if err != nil {
			return fmt.Errorf("checking %s: %w", p, err)
		}
		if exists {
			return &DuplicateError{Type: p.Type, Code: p.Code}
		}
		if err := r.store.Add(p.Type, p.Code); err != nil {
			return fmt.Errorf("registering %s: %w", p, err)
		}
	}
	return nil
}

// Unregister removes every pair in the set unconditionally: no validation,
// no existence check. Removing a pair that was never registered is a
// no-op.
func (r *Registry) Unregister(set *identifier.Set) error {
	if set == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range set.Pairs() {
		if err := r.store.Remove(p.Type, p.Code); err != nil {
			return fmt.Errorf("unregistering %s: %w", p, err)
		}
	}
	return nil
}

// IsRegistered reports whether the code is registered under the type.
func (r *Registry) IsRegistered(idType, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Contains(idType, code)
}

// RegisteredCodes returns all codes registered under the type, sorted.
func (r *Registry) RegisteredCodes(idType string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Codes(idType)
}

// RegisteredTypes returns every type the registry knows about, sorted:
// types with registered codes, types with a validator, and types with a
// generator. A type stays known through its validator or generator even
// when its code set is empty.
func (r *Registry) RegisteredTypes() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, err := r.store.Types()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(stored)+len(r.validators)+len(r.generators))
	for _, idType := range stored {
		seen[idType] = struct{}{}
	}
	for idType := range r.validators {
		seen[idType] = struct{}{}
	}
	for idType := range r.generators {
		seen[idType] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for idType := range seen {
		types = append(types, idType)
	}
	sort.Strings(types)
	return types, nil
}

// Clear wipes all registered codes, counters, and validators. Generator
// registrations survive a Clear: a type configured for id generation keeps
// generating after a reset.
func (r *Registry) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.store.Clear(); err != nil {
		return err
	}
	r.validators = make(map[string]Validator)
	return nil
}

// SetValidator installs v as the type's validator. At most one validator
// is active per type; a second call replaces the first.
func (r *Registry) SetValidator(idType string, v Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[idType] = v
}

// SetValidatorFunc installs a plain predicate as the type's validator.
func (r *Registry) SetValidatorFunc(idType string, fn func(code string) bool) {
	r.SetValidator(idType, ValidatorFunc(fn))
}
