// Package store provides identifier storage abstractions and backends.
//
// It defines the Store interface for persisting registered identifier
// codes and per-type counters, along with concrete implementations:
//
//   - MemoryStore: thread-safe in-memory backend, the baseline
//     implementation every other backend must be observably equivalent to
//   - FileStore: JSON-file-backed backend that lazily loads on first use
//     and rewrites the whole file on every mutation
//   - CachedStore: decorator wrapping any Store with an in-memory mirror
//     of per-type code sets to avoid repeated backend fetches
//
// Backends compose freely: a CachedStore over a FileStore gives cached
// persistent storage, a CachedStore over a MemoryStore exercises the
// cache paths in tests.
package store
