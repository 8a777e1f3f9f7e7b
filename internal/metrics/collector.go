package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"opsmonitor/internal/telemetry"
)

const namespace = "opsmonitor"

type StoreStatsSource interface {
	Stats() telemetry.StoreStats
}

type CacheStatsSource interface {
	Stats() (hits, misses uint64, ratio float64)
}

type PoolStatsSource interface {
	Stat() *pgxpool.Stat
}

// Collector exposes telemetry buffer, path cache and connection pool state.
// Values are read at scrape time; nothing is cached between scrapes.
type Collector struct {
	store StoreStatsSource
	cache CacheStatsSource
	pool  PoolStatsSource

	bufferEntries  *prometheus.Desc
	bufferCapacity *prometheus.Desc
	bufferAppended *prometheus.Desc
	bufferEvicted  *prometheus.Desc
	cacheHits      *prometheus.Desc
	cacheMisses    *prometheus.Desc
	poolConns      *prometheus.Desc
	poolMaxConns   *prometheus.Desc
}

type CollectorOption func(*Collector)

func WithPathCache(c CacheStatsSource) CollectorOption {
	return func(col *Collector) { col.cache = c }
}

func WithPool(p PoolStatsSource) CollectorOption {
	return func(col *Collector) { col.pool = p }
}

func NewCollector(store StoreStatsSource, opts ...CollectorOption) *Collector {
	kind := []string{"kind"}
	c := &Collector{
		store: store,
		bufferEntries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "buffer_entries"),
			"Entries currently held in the telemetry buffer.", kind, nil),
		bufferCapacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "buffer_capacity"),
			"Maximum entries the telemetry buffer holds.", kind, nil),
		bufferAppended: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "recorded_total"),
			"Metrics recorded into the telemetry buffer.", kind, nil),
		bufferEvicted: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "telemetry", "evicted_total"),
			"Metrics dropped from the telemetry buffer by capacity trimming.", kind, nil),
		cacheHits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "path_cache", "hits_total"),
			"Normalized path cache hits.", nil, nil),
		cacheMisses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "path_cache", "misses_total"),
			"Normalized path cache misses.", nil, nil),
		poolConns: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "db", "pool_connections"),
			"Session directory pool connections by state.", []string{"state"}, nil),
		poolMaxConns: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "db", "pool_max_connections"),
			"Session directory pool size limit.", nil, nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.bufferEntries
	ch <- c.bufferCapacity
	ch <- c.bufferAppended
	ch <- c.bufferEvicted
	if c.cache != nil {
		ch <- c.cacheHits
		ch <- c.cacheMisses
	}
	if c.pool != nil {
		ch <- c.poolConns
		ch <- c.poolMaxConns
	}
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.store.Stats()
	c.collectBuffer(ch, "api", stats.API)
	c.collectBuffer(ch, "db_query", stats.DBQuery)

	if c.cache != nil {
		hits, misses, _ := c.cache.Stats()
		ch <- prometheus.MustNewConstMetric(c.cacheHits, prometheus.CounterValue, float64(hits))
		ch <- prometheus.MustNewConstMetric(c.cacheMisses, prometheus.CounterValue, float64(misses))
	}

	if c.pool != nil {
		s := c.pool.Stat()
		ch <- prometheus.MustNewConstMetric(c.poolConns, prometheus.GaugeValue, float64(s.AcquiredConns()), "acquired")
		ch <- prometheus.MustNewConstMetric(c.poolConns, prometheus.GaugeValue, float64(s.IdleConns()), "idle")
		ch <- prometheus.MustNewConstMetric(c.poolConns, prometheus.GaugeValue, float64(s.TotalConns()), "total")
		ch <- prometheus.MustNewConstMetric(c.poolMaxConns, prometheus.GaugeValue, float64(s.MaxConns()))
	}
}

func (c *Collector) collectBuffer(ch chan<- prometheus.Metric, kind string, s telemetry.BufferStats) {
	ch <- prometheus.MustNewConstMetric(c.bufferEntries, prometheus.GaugeValue, float64(s.Len), kind)
	ch <- prometheus.MustNewConstMetric(c.bufferCapacity, prometheus.GaugeValue, float64(s.Capacity), kind)
	ch <- prometheus.MustNewConstMetric(c.bufferAppended, prometheus.CounterValue, float64(s.Appended), kind)
	ch <- prometheus.MustNewConstMetric(c.bufferEvicted, prometheus.CounterValue, float64(s.Evicted), kind)
}
