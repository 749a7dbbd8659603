// Package core provides the foundational domain types and interfaces of the
// wildcard index. It defines the shared abstractions for:
//
//   - Keys (validated, trimmed 3-part composite keys) and Queries (3-part
//     lookups where any position may be a wildcard)
//   - RowIDs (the canonical string a row of values is stored under)
//   - Pluggable stores for rows (RowStore) and expanded key lists (KeyCache)
//   - The invalid-argument error returned by writes
//
// The package keeps implementation concerns (canonicalization, powerset
// expansion, concurrent storage) out of scope, exposing small interfaces so
// alternative backends can be supplied to the index without touching callers.
package core
