// Package journal provides a SQLite-backed operation journal for the
// variable store.
//
// The journal is an append-only audit log: one row per get/set/append
// invocation, carrying the operation name, the resolved scope
// identifier, and the raw field triples as JSON. It exists for
// operators debugging workflow runs; the record files in the store
// remain the source of truth.
//
// Journaling is best-effort. Callers log a failed journal write and
// carry on - a journal problem must never fail the workflow step it
// was recording.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//
// All reads order by seq ASC so histories replay deterministically.
package journal
