package index

import "github.com/prometheus/client_golang/prometheus"

// indexMetrics holds Prometheus metrics for index operations.
type indexMetrics struct {
	puts        prometheus.Counter
	rejected    *prometheus.CounterVec
	gets        prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	clears      prometheus.Counter
}

// newIndexMetrics creates the metrics and registers them with reg.
func newIndexMetrics(reg prometheus.Registerer, indexID string) (*indexMetrics, error) {
	labels := prometheus.Labels{"index_id": indexID}
	m := &indexMetrics{
		puts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "wildmap",
			Subsystem:   "index",
			Name:        "puts_total",
			ConstLabels: labels,
			Help:        "Total number of accepted put operations",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "wildmap",
			Subsystem:   "index",
			Name:        "puts_rejected_total",
			ConstLabels: labels,
			Help:        "Total number of put operations rejected by validation",
		}, []string{"param", "reason"}),
		gets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "wildmap",
			Subsystem:   "index",
			Name:        "gets_total",
			ConstLabels: labels,
			Help:        "Total number of get operations",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "wildmap",
			Subsystem:   "key_cache",
			Name:        "hits_total",
			ConstLabels: labels,
			Help:        "Total number of key expansion cache hits",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "wildmap",
			Subsystem:   "key_cache",
			Name:        "misses_total",
			ConstLabels: labels,
			Help:        "Total number of key expansion cache misses",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "wildmap",
			Subsystem:   "index",
			Name:        "clears_total",
			ConstLabels: labels,
			Help:        "Total number of clear operations",
		}),
	}

	registered := make([]prometheus.Collector, 0, 6)
	for _, c := range []prometheus.Collector{m.puts, m.rejected, m.gets, m.cacheHits, m.cacheMisses, m.clears} {
		if err := reg.Register(c); err != nil {
			for _, r := range registered {
				reg.Unregister(r)
			}
			return nil, err
		}
		registered = append(registered, c)
	}
	return m, nil
}

func (m *indexMetrics) recordPut() {
	if m != nil {
		m.puts.Inc()
	}
}

func (m *indexMetrics) recordRejected(param, reason string) {
	if m != nil {
		m.rejected.WithLabelValues(param, reason).Inc()
	}
}

func (m *indexMetrics) recordGet() {
	if m != nil {
		m.gets.Inc()
	}
}

func (m *indexMetrics) recordClear() {
	if m != nil {
		m.clears.Inc()
	}
}

// CacheHit implements subset.Observer.
func (m *indexMetrics) CacheHit() { m.cacheHits.Inc() }

// CacheMiss implements subset.Observer.
func (m *indexMetrics) CacheMiss() { m.cacheMisses.Inc() }

// registerRowsGauge exposes the current row count through a GaugeFunc so it is read
// only on scrape.
func registerRowsGauge(reg prometheus.Registerer, indexID string, fn func() float64) error {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   "wildmap",
		Subsystem:   "index",
		Name:        "rows",
		ConstLabels: prometheus.Labels{"index_id": indexID},
		Help:        "Current number of rows in the row store",
	}, fn)
	return reg.Register(g)
}
