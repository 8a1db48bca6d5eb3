package store

// Store defines the contract implemented by every identifier storage
// backend. Codes are grouped by identifier type; each type additionally
// owns one monotonic counter used for sequential id generation.
//
// Absence is never an error: removing a missing code, listing an unknown
// type, or reading an unset counter all succeed with empty or zero
// results. Errors are reserved for backend failures (I/O).
type Store interface {
	// Add inserts a code into the type's code set. Idempotent.
	Add(idType, code string) error

	// Remove deletes a code from the type's code set. Idempotent; removing
	// an absent code is not an error.
	Remove(idType, code string) error

	// Contains reports whether the code is present under the type.
	Contains(idType, code string) (bool, error)

	// Codes returns all codes registered under the type, sorted. Returns
	// an empty slice for an unknown type.
	Codes(idType string) ([]string, error)

	// Types returns all types with at least one registered code, sorted.
	Types() ([]string, error)

	// Counter returns the type's counter value, 0 if never set.
	Counter(idType string) (int64, error)

	// SetCounter stores the type's counter value.
	SetCounter(idType string, value int64) error

	// Clear wipes all codes and counters.
	Clear() error
}
