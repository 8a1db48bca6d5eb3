package registry

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// GeneratorKind selects the strategy used to produce new codes for a type.
type GeneratorKind string

const (
	// KindAutoIncrement generates "1", "2", "3", … backed by the type's
	// persisted counter.
	KindAutoIncrement GeneratorKind = "auto-increment"

	// KindUUID generates random UUIDv4 strings.
	KindUUID GeneratorKind = "uuid"
)

// RegisterGenerator configures the generation strategy for a type. A
// second call replaces the first. Generator registrations survive Clear.
func (r *Registry) RegisterGenerator(idType string, kind GeneratorKind) error {
	switch kind {
	case KindAutoIncrement, KindUUID:
	default:
		return fmt.Errorf("unknown generator kind %q", kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generators[idType] = kind
	return nil
}

// GenerateID produces a new unique code for the type using its registered
// generator, registers it, and returns it. The returned code satisfies
// IsRegistered immediately. Returns a NoGeneratorError if the type has no
// generator.
func (r *Registry) GenerateID(idType string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kind, ok := r.generators[idType]
	if !ok {
		return "", &NoGeneratorError{Type: idType}
	}
	switch kind {
	case KindAutoIncrement:
		return r.nextAutoIncrement(idType)
	case KindUUID:
		return r.nextUUID(idType)
	}
	return "", fmt.Errorf("unknown generator kind %q for type %q", kind, idType)
}

// nextAutoIncrement produces the next counter-backed code. The counter is
// read and written under the registry lock, so concurrent generation for
// the same type cannot hand out the same value. When the counter has never
// been set it is seeded from the largest numeric code already registered,
// so generation for a pre-populated type continues where the data left
// off. Candidates colliding with manually registered codes advance the
// counter past them.
func (r *Registry) nextAutoIncrement(idType string) (string, error) {
	next, err := r.store.Counter(idType)
	if err != nil {
		return "", fmt.Errorf("reading counter for %q: %w", idType, err)
	}
	if next == 0 {
		if next, err = r.maxNumericCode(idType); err != nil {
			return "", err
		}
	}
	var code string
	for {
		next++
		code = strconv.FormatInt(next, 10)
		exists, err := r.store.Contains(idType, code)
		if err != nil {
			return "", fmt.Errorf("checking %s:%s: %w", idType, code, err)
		}
		if !exists {
			break
		}
	}
	if err := r.store.SetCounter(idType, next); err != nil {
		return "", fmt.Errorf("advancing counter for %q: %w", idType, err)
	}
	if err := r.store.Add(idType, code); err != nil {
		return "", fmt.Errorf("registering generated %s:%s: %w", idType, code, err)
	}
	return code, nil
}

// maxNumericCode returns the largest non-negative integer among the type's
// registered codes, 0 if there is none. Non-numeric codes are ignored.
func (r *Registry) maxNumericCode(idType string) (int64, error) {
	codes, err := r.store.Codes(idType)
	if err != nil {
		return 0, fmt.Errorf("listing codes for %q: %w", idType, err)
	}
	var highest int64
	for _, code := range codes {
		n, err := strconv.ParseInt(code, 10, 64)
		if err != nil || n < 0 {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest, nil
}

// nextUUID produces a random UUIDv4 code. Collision probability is treated
// as negligible; the code is registered without a duplicate check.
func (r *Registry) nextUUID(idType string) (string, error) {
	code := uuid.NewString()
	if err := r.store.Add(idType, code); err != nil {
		return "", fmt.Errorf("registering generated %s:%s: %w", idType, code, err)
	}
	return code, nil
}
