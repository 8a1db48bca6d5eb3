// Package identifier defines the typed identifier value types used
// throughout the registry: a Pair couples an identifier type with a code,
// and a Set is an ordered, de-duplicated collection of pairs that is
// registered or unregistered as one unit.
package identifier

import (
	"fmt"
	"strings"
)

// Pair is a single typed identifier value. The Type discriminates the
// identifier kind (e.g. "isbn", "orcid"); the Code is the identifier value
// itself. Pairs are plain values and compare with ==.
type Pair struct {
	Type string
	Code string
}

// String renders the pair as "type:code".
func (p Pair) String() string {
	return p.Type + ":" + p.Code
}

// ParsePair parses a "type:code" string into a Pair. The code may itself
// contain colons; only the first colon separates type from code.
func ParsePair(s string) (Pair, error) {
	idType, code, ok := strings.Cut(s, ":")
	if !ok {
		return Pair{}, fmt.Errorf("invalid identifier %q: expected type:code", s)
	}
	if idType == "" || code == "" {
		return Pair{}, fmt.Errorf("invalid identifier %q: type and code must be non-empty", s)
	}
	return Pair{Type: idType, Code: code}, nil
}

// Set is an ordered collection of pairs with set semantics: adding a pair
// that is already present is a no-op, and iteration order is insertion
// order. The zero value is not usable; construct with NewSet.
type Set struct {
	pairs []Pair
	index map[Pair]struct{}
}

// NewSet creates a Set containing the given pairs, dropping duplicates
// while preserving first-occurrence order.
func NewSet(pairs ...Pair) *Set {
	s := &Set{index: make(map[Pair]struct{}, len(pairs))}
	for _, p := range pairs {
		s.Add(p)
	}
	return s
}

// Add appends a pair to the set. Returns false if the pair was already
// present.
func (s *Set) Add(p Pair) bool {
	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = struct{}{}
	s.pairs = append(s.pairs, p)
	return true
}

// Contains reports whether the set holds the given pair.
func (s *Set) Contains(p Pair) bool {
	_, ok := s.index[p]
	return ok
}

// Pairs returns the set's pairs in insertion order. The returned slice is
// a copy; mutating it does not affect the set.
func (s *Set) Pairs() []Pair {
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// Len returns the number of pairs in the set.
func (s *Set) Len() int {
	return len(s.pairs)
}
