package core

// RowStore maps row ids to append-only, insertion ordered value sequences.
// Implementations must be safe for concurrent use: appends to the same row are
// atomic relative to each other, appends to different rows are independent.
type RowStore interface {
	// Append adds value to the end of the row, creating the row if absent.
	Append(id RowID, value string)
	// Get returns a point-in-time copy of the row, or an empty slice.
	Get(id RowID) []string
	// IsEmpty reports whether no rows exist.
	IsEmpty() bool
	// Len returns the number of rows.
	Len() int
	// Clear removes all rows.
	Clear()
}
