// Package index implements the wildcard index: an in-memory associative
// structure keyed by a 3-part composite key that answers both exact and
// wildcard lookups in a single map read.
//
// # Write path
//
// Put validates and trims its four arguments, expands the key into the 8 row
// ids of every fixed/wildcard combination (memoized per key), and appends the
// value to each row. Validation happens before any mutation, so a rejected Put
// leaves the index untouched.
//
// # Read path
//
// Get turns blank positions into wildcards, renders the single row id the
// query maps to and returns a copy of that row. Get never fails.
//
// # Concurrency
//
// An Index is safe for concurrent use and owns no goroutines. The 8 appends of
// one Put are independent: a concurrent reader may see the new value under
// some derived rows and not yet under others. Clear is not linearizable with
// concurrent writers; once it returns with no writers running the index is
// empty.
package index
