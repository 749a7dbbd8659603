package testutil

import (
	"github.com/hupe1980/wildmap/core"
)

// EntryBuilder provides a fluent helper for constructing ordered datasets in tests.
// Example:
//
//	entries := NewEntryBuilder().Add("Honda", "Civic", "Blue", "123").Add("Toyota", "Camry", "Red", "456").Build()
//
// Keys are taken verbatim; no trimming or validation happens here.
type EntryBuilder struct {
	entries []core.Entry
}

// NewEntryBuilder creates an empty builder.
func NewEntryBuilder() *EntryBuilder { return &EntryBuilder{} }

// Add appends one entry (chainable).
func (b *EntryBuilder) Add(k1, k2, k3, value string) *EntryBuilder {
	b.entries = append(b.entries, core.Entry{Key: core.Key{K1: k1, K2: k2, K3: k3}, Value: value})
	return b
}

// AddEntries appends pre-built entries (chainable).
func (b *EntryBuilder) AddEntries(es ...core.Entry) *EntryBuilder {
	b.entries = append(b.entries, es...)
	return b
}

// Build returns a copy of the accumulated entries.
func (b *EntryBuilder) Build() []core.Entry {
	return append([]core.Entry{}, b.entries...)
}

// Vehicles returns the reference dataset of makes, models and colors used
// throughout the tests, in insertion order.
func Vehicles() []core.Entry {
	return NewEntryBuilder().
		Add("Honda", "Civic", "Blue", "123").
		Add("Honda", "Civic", "Blue", "456").
		Add("Honda", "Acord", "Black", "789").
		Add("Honda", "Acord", "Black Metallic", "098").
		Add("Toyota", "Corolla", "Red", "468").
		Add("Toyota", "Corolla", "White", "654").
		Add("Toyota", "Camry", "Silver", "246").
		Add("Nissan", "Juke", "White", "135").
		Add("Nissan", "Juke", "Red Metallic", "579").
		Build()
}
