package testutil

import (
	"strings"

	"github.com/hupe1980/wildmap/core"
)

// Putter is anything entries can be written to.
type Putter interface {
	Put(k1, k2, k3, value string) error
}

// Load writes every entry to dst in order and returns the first error.
func Load(dst Putter, entries []core.Entry) error {
	for _, e := range entries {
		if err := dst.Put(e.Key.K1, e.Key.K2, e.Key.K3, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Expected computes the answer of a query by linear scan over entries. It is
// the reference the index is checked against: blank query positions are
// wildcards, everything is compared after trimming surrounding whitespace.
func Expected(entries []core.Entry, q1, q2, q3 string) []string {
	query := [core.Arity]string{strings.TrimSpace(q1), strings.TrimSpace(q2), strings.TrimSpace(q3)}
	out := []string{}
	for _, e := range entries {
		match := true
		for i, c := range e.Key.Components() {
			if query[i] != "" && query[i] != strings.TrimSpace(c) {
				match = false
				break
			}
		}
		if match {
			out = append(out, strings.TrimSpace(e.Value))
		}
	}
	return out
}

// Queries enumerates every wildcard combination of every distinct key in
// entries, including the all-wildcard query.
func Queries(entries []core.Entry) [][core.Arity]string {
	seen := map[[core.Arity]string]bool{}
	var out [][core.Arity]string
	for _, e := range entries {
		parts := e.Key.Components()
		for mask := 0; mask < 1<<core.Arity; mask++ {
			var q [core.Arity]string
			for i := range parts {
				if mask&(1<<i) != 0 {
					q[i] = parts[i]
				}
			}
			if !seen[q] {
				seen[q] = true
				out = append(out, q)
			}
		}
	}
	return out
}
