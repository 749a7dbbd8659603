package index

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/wildmap/canonical"
	"github.com/hupe1980/wildmap/core"
	"github.com/hupe1980/wildmap/logging"
	"github.com/hupe1980/wildmap/rowstore"
	"github.com/hupe1980/wildmap/subset"
	"github.com/prometheus/client_golang/prometheus"
)

// Config defines tuning parameters for an Index.
//
// Example:
//
//	cfg := Config{
//	    Shards:           64,
//	    NormalizeUnicode: true,
//	}
type Config struct {
	// Shards is the number of lock shards of the default row store. More
	// shards reduce contention between writers of unrelated rows. Values
	// <= 0 fall back to rowstore.DefaultShards. Ignored when a custom
	// RowStore is supplied.
	Shards int

	// NormalizeUnicode applies NFC normalization to keys and values after
	// trimming, so composed and decomposed spellings are one key.
	NormalizeUnicode bool
}

// DefaultConfig provides the configuration used when none is given.
var DefaultConfig = Config{
	Shards:           rowstore.DefaultShards,
	NormalizeUnicode: false,
}

// Options configures an Index instance using the functional options pattern.
// Every dependency has an in-memory default.
type Options struct {
	// Config contains operational parameters. Defaults to DefaultConfig.
	Config Config

	// RowStore holds the rows. Defaults to a sharded in-memory store.
	RowStore core.RowStore

	// KeyCache memoizes key expansion. Defaults to subset.NewCache().
	KeyCache core.KeyCache

	// Logger receives operational logs. Defaults to NoOp logger if nil.
	Logger logging.Logger

	// Registerer, when set, receives Prometheus metrics for this index.
	Registerer prometheus.Registerer
}

// Stats is a point-in-time summary of an index.
type Stats struct {
	Rows         int
	CachedKeys   int
	CacheHits    int64
	CacheMisses  int64
	PutsAccepted int64
	PutsRejected int64
}

// Index is the wildcard index. It is safe for concurrent use; see the package
// documentation for the consistency guarantees.
type Index struct {
	id      string
	config  Config
	canon   *canonical.Canonicalizer
	rows    core.RowStore
	cache   core.KeyCache
	logger  *loggerAdapter
	metrics *indexMetrics

	accepted atomic.Int64
	rejected atomic.Int64
}

// New creates an empty Index. Unset dependencies are initialized with
// in-memory implementations.
//
// Examples:
//
//	// All defaults
//	ix := New()
//
//	// Unicode normalization and metrics
//	ix := New(func(o *Options) {
//	    o.Config.NormalizeUnicode = true
//	    o.Registerer = prometheus.DefaultRegisterer
//	})
func New(optFns ...func(o *Options)) *Index {
	opts := Options{
		Config: DefaultConfig,
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	fields := []any{"normalize_unicode", opts.Config.NormalizeUnicode}
	if opts.RowStore == nil {
		store := rowstore.NewInMemoryStore(opts.Config.Shards)
		fields = append(fields, "shards", store.Shards())
		opts.RowStore = store
	}
	if opts.KeyCache == nil {
		opts.KeyCache = subset.NewCache()
	}

	id := uuid.NewString()
	ix := &Index{
		id:     id,
		config: opts.Config,
		canon: canonical.New(func(o *canonical.Options) {
			o.NormalizeUnicode = opts.Config.NormalizeUnicode
		}),
		rows:   opts.RowStore,
		cache:  opts.KeyCache,
		logger: newLoggerAdapter(opts.Logger, id),
	}

	if opts.Registerer != nil {
		ix.registerMetrics(opts.Registerer)
	}

	ix.logger.info("Index created", fields...)

	return ix
}

func (ix *Index) registerMetrics(reg prometheus.Registerer) {
	m, err := newIndexMetrics(reg, ix.id)
	if err != nil {
		ix.logger.warn("Metrics registration failed", "error", err.Error())
		return
	}
	if err := registerRowsGauge(reg, ix.id, func() float64 { return float64(ix.rows.Len()) }); err != nil {
		ix.logger.warn("Rows gauge registration failed", "error", err.Error())
	}
	if o, ok := ix.cache.(interface{ SetObserver(subset.Observer) }); ok {
		o.SetObserver(m)
	}
	ix.metrics = m
}

// ID returns the instance identifier used in logs and metric labels.
func (ix *Index) ID() string { return ix.id }

// Config returns the configuration the index was built with.
func (ix *Index) Config() Config { return ix.config }

// Put stores value under the composite key (k1, k2, k3). All arguments are
// trimmed. If any argument is empty or blank, or a key component contains a
// reserved separator byte, Put returns a *core.ArgumentError naming the first
// offending parameter and the index is left unchanged.
func (ix *Index) Put(k1, k2, k3, value string) error {
	key, v, err := ix.canon.Key(k1, k2, k3, value)
	if err != nil {
		ix.rejected.Add(1)
		var argErr *core.ArgumentError
		if errors.As(err, &argErr) {
			ix.logger.rejected(argErr)
			ix.metrics.recordRejected(string(argErr.Param), argErr.Reason.String())
		}
		return err
	}

	ids := ix.cache.Rows(key)
	for _, id := range ids {
		ix.rows.Append(id, v)
	}

	ix.accepted.Add(1)
	ix.metrics.recordPut()
	ix.logger.debug("Put accepted", "rows", len(ids))

	return nil
}

// PutEntry stores e. It is equivalent to Put with the entry's fields.
func (ix *Index) PutEntry(e core.Entry) error {
	return ix.Put(e.Key.K1, e.Key.K2, e.Key.K3, e.Value)
}

// Get returns the values of every entry whose key matches the query, in
// insertion order. An empty or blank argument is a wildcard for its position.
// The result is a copy; an empty, non-nil slice is returned when nothing
// matches.
func (ix *Index) Get(k1, k2, k3 string) []string {
	ix.metrics.recordGet()
	return ix.Query(ix.canon.Query(k1, k2, k3))
}

// Query is Get for an already normalized query.
func (ix *Index) Query(q core.Query) []string {
	if !canonical.Matchable(q) {
		return []string{}
	}
	return ix.rows.Get(canonical.RowIDForQuery(q))
}

// IsEmpty reports whether the index holds no entries.
func (ix *Index) IsEmpty() bool {
	return ix.rows.IsEmpty()
}

// Clear removes every entry and drops the key expansion cache.
func (ix *Index) Clear() {
	start := time.Now()
	n := ix.rows.Len()
	ix.rows.Clear()
	ix.cache.Clear()
	ix.metrics.recordClear()
	ix.logger.cleared(n, time.Since(start))
}

// Stats returns a summary of the index. Cache hit counters are reported when
// the key cache exposes them.
func (ix *Index) Stats() Stats {
	st := Stats{
		Rows:         ix.rows.Len(),
		CachedKeys:   ix.cache.Len(),
		PutsAccepted: ix.accepted.Load(),
		PutsRejected: ix.rejected.Load(),
	}
	if sc, ok := ix.cache.(interface{ Stats() subset.Stats }); ok {
		cs := sc.Stats()
		st.CacheHits = cs.Hits
		st.CacheMisses = cs.Misses
	}
	return st
}
