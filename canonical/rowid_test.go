package canonical

import (
	"testing"

	"github.com/hupe1980/wildmap/core"
	"github.com/stretchr/testify/assert"
)

func TestRowIDForMask(t *testing.T) {
	k := core.Key{K1: "Honda", K2: "Civic", K3: "Blue"}

	assert.Equal(t, core.RowID(WildcardMarker+Separator+WildcardMarker+Separator+WildcardMarker), RowIDForMask(k, 0))
	assert.Equal(t, core.RowID("Honda"+Separator+WildcardMarker+Separator+WildcardMarker), RowIDForMask(k, 0b001))
	assert.Equal(t, core.RowID(WildcardMarker+Separator+"Civic"+Separator+"Blue"), RowIDForMask(k, 0b110))
	assert.Equal(t, core.RowID("Honda"+Separator+"Civic"+Separator+"Blue"), RowIDForMask(k, 0b111))
}

func TestRowIDForQuery_MatchesMaskRendering(t *testing.T) {
	c := New()
	k := core.Key{K1: "Honda", K2: "Civic", K3: "Blue"}

	assert.Equal(t, RowIDForMask(k, 0b111), RowIDForQuery(c.Query("Honda", "Civic", "Blue")))
	assert.Equal(t, RowIDForMask(k, 0b101), RowIDForQuery(c.Query(" Honda", "", "Blue ")))
	assert.Equal(t, RowIDForMask(k, 0b010), RowIDForQuery(c.Query("", "Civic", "  ")))
	assert.Equal(t, RowIDForMask(k, 0), RowIDForQuery(c.Query("", "", "")))
}

func TestRowID_NoCollisionAcrossBoundaries(t *testing.T) {
	a := core.Key{K1: "a_b", K2: "c", K3: "d"}
	b := core.Key{K1: "a", K2: "b_c", K3: "d"}

	for mask := uint(1); mask < 8; mask++ {
		if mask&0b011 == 0 {
			continue
		}
		assert.NotEqual(t, RowIDForMask(a, mask), RowIDForMask(b, mask), "mask %03b", mask)
	}
}

func TestMatchable(t *testing.T) {
	c := New()

	assert.True(t, Matchable(c.Query("a", "", "c")))
	assert.True(t, Matchable(c.Query("", "", "")))
	assert.False(t, Matchable(c.Query("a"+Separator+"b", "", "")))
	assert.False(t, Matchable(c.Query("", WildcardMarker, "")))
}
