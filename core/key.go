package core

// Arity is the fixed number of components of a composite key.
const Arity = 3

// RowID is the canonical identifier a row of values is stored under. It is
// produced by the canonical package from a Key (with some positions replaced
// by the wildcard marker) or from a Query.
type RowID string

// Key is a validated composite key. Every component is trimmed and non-empty.
// Key is comparable and may be used directly as a map key.
type Key struct {
	K1 string
	K2 string
	K3 string
}

// Components returns the key components in positional order.
func (k Key) Components() [Arity]string {
	return [Arity]string{k.K1, k.K2, k.K3}
}

// Query is a normalized lookup. A nil position is a wildcard; a non-nil
// position holds the trimmed value the stored key must equal.
type Query struct {
	parts [Arity]*string
}

// NewQuery builds a Query from already normalized positions. Pass nil for a
// wildcard position.
func NewQuery(k1, k2, k3 *string) Query {
	return Query{parts: [Arity]*string{k1, k2, k3}}
}

// At returns the value at position i (0 based) and whether it is fixed.
func (q Query) At(i int) (string, bool) {
	p := q.parts[i]
	if p == nil {
		return "", false
	}
	return *p, true
}

// IsWildcard reports whether every position of the query is a wildcard.
func (q Query) IsWildcard() bool {
	for _, p := range q.parts {
		if p != nil {
			return false
		}
	}
	return true
}

// Entry is a single logical insertion: a key and the value stored under it.
type Entry struct {
	Key   Key
	Value string
}
