package core

// KeyCache memoizes the row ids a Key expands to. The cached value is a pure
// function of the key, so concurrent population of the same key is harmless.
type KeyCache interface {
	// Rows returns the row ids for k, computing and caching them on a miss.
	// Callers must not modify the returned slice.
	Rows(k Key) []RowID
	// Len returns the number of cached keys.
	Len() int
	// Clear drops every cached entry.
	Clear()
}
