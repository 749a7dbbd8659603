package subset

import (
	"strings"
	"testing"

	"github.com/hupe1980/wildmap/canonical"
	"github.com/hupe1980/wildmap/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_ProducesPowerSet(t *testing.T) {
	k := core.Key{K1: "Honda", K2: "Civic", K3: "Blue"}
	ids := Expand(k)
	require.Len(t, ids, Size)

	seen := map[core.RowID]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate row id %q", id)
		seen[id] = true
		assert.Len(t, strings.Split(string(id), canonical.Separator), core.Arity)
	}

	c := canonical.New()
	for _, q := range [][3]string{
		{"", "", ""},
		{"Honda", "", ""},
		{"", "Civic", ""},
		{"", "", "Blue"},
		{"Honda", "Civic", ""},
		{"Honda", "", "Blue"},
		{"", "Civic", "Blue"},
		{"Honda", "Civic", "Blue"},
	} {
		id := canonical.RowIDForQuery(c.Query(q[0], q[1], q[2]))
		assert.True(t, seen[id], "query %v not covered", q)
	}
}

func TestExpand_MaskOrder(t *testing.T) {
	ids := Expand(core.Key{K1: "a", K2: "b", K3: "c"})

	u, m := canonical.Separator, canonical.WildcardMarker
	assert.Equal(t, core.RowID(m+u+m+u+m), ids[0])
	assert.Equal(t, core.RowID("a"+u+"b"+u+"c"), ids[Size-1])
}
