// Package rowstore contains concrete RowStore implementations. The store
// interface resides in the core package. Depend on core.RowStore in your code
// and select an implementation (like the in-memory store below) at wiring time.
package rowstore
