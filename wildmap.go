// Package wildmap provides a high-level façade over the wildcard index: an
// in-memory, thread-safe map keyed by a 3-part composite key that answers
// exact and wildcard lookups in constant time. Most applications interact with
// this package by:
//  1. Creating a Map via New() (optionally overriding the in-memory defaults)
//  2. Storing values with Put(make, model, color, value)
//  3. Querying with Get, passing Wildcard ("") for any position to match all
//
// Each entry is stored under all 2^3 combinations of its key positions, so
// writes cost eight appends while every read is a single lookup.
//
// The façade delegates to index.Index while keeping setup concise. Defaults
// are safe for tests and production alike; instances are fully independent.
package wildmap

import (
	"github.com/hupe1980/wildmap/core"
	"github.com/hupe1980/wildmap/index"
	"github.com/hupe1980/wildmap/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// Wildcard matches every value at a query position. Any blank string does
// the same; the constant only documents intent at call sites.
const Wildcard = ""

// ErrInvalidArgument is the kind of every error returned by Put.
var ErrInvalidArgument = core.ErrInvalidArgument

// ArgumentError reports which Put parameter was rejected and why.
type ArgumentError = core.ArgumentError

// Options configures the Map instance.
type Options struct {
	// Index configuration (shards, unicode normalization)
	Config index.Config

	// Stores (defaults to in-memory implementations if not provided)
	RowStore core.RowStore
	KeyCache core.KeyCache

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// Registerer receives Prometheus metrics when set.
	Registerer prometheus.Registerer
}

// Map is the high-level façade over an index.Index.
type Map struct {
	opts  Options
	index *index.Index
}

// New creates a new Map with optional overrides. Any unset dependency is
// initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) *Map {
	opts := Options{
		Config: index.DefaultConfig,
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	ix := index.New(func(o *index.Options) {
		o.Config = opts.Config
		o.RowStore = opts.RowStore
		o.KeyCache = opts.KeyCache
		o.Logger = opts.Logger
		o.Registerer = opts.Registerer
	})

	return &Map{opts: opts, index: ix}
}

// Put stores value under (k1, k2, k3). It returns an *ArgumentError naming
// the first empty or blank argument, in which case nothing is stored.
func (m *Map) Put(k1, k2, k3, value string) error { return m.index.Put(k1, k2, k3, value) }

// Get returns, in insertion order, the values of every entry matching the
// query. Blank positions are wildcards. The result is a copy and never nil.
func (m *Map) Get(k1, k2, k3 string) []string { return m.index.Get(k1, k2, k3) }

// IsEmpty reports whether the map holds no entries.
func (m *Map) IsEmpty() bool { return m.index.IsEmpty() }

// Clear removes all entries.
func (m *Map) Clear() { m.index.Clear() }

// Stats returns a point-in-time summary.
func (m *Map) Stats() index.Stats { return m.index.Stats() }

// ID returns the instance identifier used in logs and metric labels.
func (m *Map) ID() string { return m.index.ID() }

// Index exposes the underlying index.
func (m *Map) Index() *index.Index { return m.index }
