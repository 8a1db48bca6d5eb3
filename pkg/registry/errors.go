package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for branching on failure kind with errors.Is.
var (
	// ErrDuplicate matches registration failures caused by an identifier
	// that already exists under its type.
	ErrDuplicate = errors.New("identifier already registered")

	// ErrValidation matches registration failures caused by a validator
	// rejecting an identifier code.
	ErrValidation = errors.New("identifier rejected by validator")

	// ErrNoGenerator matches GenerateID calls for a type without a
	// registered generator.
	ErrNoGenerator = errors.New("no generator registered for type")
)

// DuplicateError reports that an identifier was already registered. It
// matches ErrDuplicate via errors.Is.
type DuplicateError struct {
	Type string
	Code string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("identifier %s:%s already registered", e.Type, e.Code)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicate
}

// ValidationError reports that a registered validator rejected an
// identifier code. It matches ErrValidation via errors.Is.
type ValidationError struct {
	Type string
	Code string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("identifier %s:%s rejected by validator", e.Type, e.Code)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NoGeneratorError reports a GenerateID call for a type that has no
// registered generator. It matches ErrNoGenerator via errors.Is.
type NoGeneratorError struct {
	Type string
}

func (e *NoGeneratorError) Error() string {
	return fmt.Sprintf("no generator registered for type %q", e.Type)
}

func (e *NoGeneratorError) Is(target error) bool {
	return target == ErrNoGenerator
}
