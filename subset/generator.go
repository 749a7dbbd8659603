package subset

import (
	"github.com/hupe1980/wildmap/canonical"
	"github.com/hupe1980/wildmap/core"
)

// Size is the number of row ids a key expands to.
const Size = 1 << core.Arity

// Expand returns the row ids of k for every mask in 0..Size-1, in mask order.
// Bit i of the mask set means position i keeps its value; mask 0 is the
// all-wildcard row and mask Size-1 the exact row.
func Expand(k core.Key) []core.RowID {
	ids := make([]core.RowID, Size)
	for mask := uint(0); mask < Size; mask++ {
		ids[mask] = canonical.RowIDForMask(k, mask)
	}
	return ids
}
