// Package registry implements the identifier registry orchestrator.
//
// A Registry combines one storage backend (see pkg/store) with per-type
// validators and per-type id generators into a single contract enforcing
// global uniqueness of typed identifiers. Callers bundle related
// identifiers into an identifier.Set and register the whole set in one
// call; the registry rejects the call on the first duplicate or
// validation failure.
//
// Key types:
//
//   - Registry: the orchestrator; all operations are safe for concurrent
//     use, serialized behind one mutex so check-then-act sequences never
//     interleave
//   - Validator / ValidatorFunc: per-type code format predicates
//   - GeneratorKind: id generation strategy, auto-increment or uuid
//
// Failure modes are typed: DuplicateError, ValidationError, and
// NoGeneratorError each match a package sentinel via errors.Is, so callers
// can branch on the failure kind without string matching.
//
// Register applies a set in caller order and stops at the first failing
// pair; pairs added earlier in the same call stay registered. Callers
// wanting all-or-nothing semantics should validate every pair (and check
// IsRegistered) before registering.
package registry
