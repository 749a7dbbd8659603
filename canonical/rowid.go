package canonical

import (
	"strings"

	"github.com/hupe1980/wildmap/core"
)

// RowIDForMask renders the row id of k in which position i is fixed when bit i
// of mask is set and wildcarded otherwise.
func RowIDForMask(k core.Key, mask uint) core.RowID {
	parts := k.Components()

	var b strings.Builder
	b.Grow(len(parts[0]) + len(parts[1]) + len(parts[2]) + 2*len(Separator))

	for i, p := range parts {
		if i > 0 {
			b.WriteString(Separator)
		}
		if mask&(1<<uint(i)) != 0 {
			b.WriteString(p)
		} else {
			b.WriteString(WildcardMarker)
		}
	}

	return core.RowID(b.String())
}

// RowIDForQuery renders the single row id a query reads from.
func RowIDForQuery(q core.Query) core.RowID {
	var b strings.Builder
	for i := 0; i < core.Arity; i++ {
		if i > 0 {
			b.WriteString(Separator)
		}
		if v, ok := q.At(i); ok {
			b.WriteString(v)
		} else {
			b.WriteString(WildcardMarker)
		}
	}
	return core.RowID(b.String())
}

// Matchable reports whether any stored key could satisfy q. A fixed position
// containing a reserved byte can never have been written.
func Matchable(q core.Query) bool {
	for i := 0; i < core.Arity; i++ {
		if v, ok := q.At(i); ok && ContainsReserved(v) {
			return false
		}
	}
	return true
}
