// Package testutil contains helper builders and utilities used across tests
// to reduce boilerplate when constructing datasets of index entries and
// computing expected query results. These helpers are intentionally minimal
// and avoid adding third‑party dependencies. They are not intended for
// production usage.
package testutil
