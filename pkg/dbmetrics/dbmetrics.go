// Package dbmetrics wraps a *sql.DB so every query reports its latency and
// the connection pool is sampled into Prometheus gauges.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const poolSampleInterval = 10 * time.Second

// Collectors holds the database collectors. Registered once per process.
type Collectors struct {
	QueryDuration *prometheus.HistogramVec
	ConnsOpen     prometheus.Gauge
	ConnsIdle     prometheus.Gauge
	ConnsInUse    prometheus.Gauge
}

// NewCollectors registers the database collectors on the default registry.
func NewCollectors(serviceName string) *Collectors {
	labels := prometheus.Labels{"service": serviceName}

	return &Collectors{
		QueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency by operation.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		ConnsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open connections in the pool.",
			ConstLabels: labels,
		}),
		ConnsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle connections in the pool.",
			ConstLabels: labels,
		}),
		ConnsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Connections currently in use.",
			ConstLabels: labels,
		}),
	}
}

// DB wraps a *sql.DB with query timing. It satisfies the executor surface
// the repositories use; transactions still run on the underlying pool.
type DB struct {
	db         *sql.DB
	collectors *Collectors
}

// Wrap wraps db and starts the pool sampler. Closing stopCh stops the
// sampler goroutine.
func Wrap(db *sql.DB, collectors *Collectors, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, collectors: collectors}
	go wrapped.samplePool(stopCh)
	return wrapped
}

// Unwrap returns the underlying pool for transaction begin.
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.collectors.QueryDuration.WithLabelValues("exec").Observe(time.Since(start).Seconds())
	return result, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collectors.QueryDuration.WithLabelValues("query").Observe(time.Since(start).Seconds())
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collectors.QueryDuration.WithLabelValues("query_row").Observe(time.Since(start).Seconds())
	return row
}

func (d *DB) samplePool(stopCh <-chan struct{}) {
	ticker := time.NewTicker(poolSampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.collectors.ConnsOpen.Set(float64(stats.OpenConnections))
			d.collectors.ConnsIdle.Set(float64(stats.Idle))
			d.collectors.ConnsInUse.Set(float64(stats.InUse))
		}
	}
}
