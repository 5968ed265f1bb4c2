package db

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolCollectors exposes connection pool statistics as gauges. Stat is read
// at scrape time.
func PoolCollectors(pool *pgxpool.Pool) []prometheus.Collector {
	gauge := func(name, help string, value func(*pgxpool.Stat) int32) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "acad",
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 {
			return float64(value(pool.Stat()))
		})
	}

	return []prometheus.Collector{
		gauge("acquired_connections", "Connections currently checked out of the pool", (*pgxpool.Stat).AcquiredConns),
		gauge("idle_connections", "Idle connections in the pool", (*pgxpool.Stat).IdleConns),
		gauge("total_connections", "All connections owned by the pool", (*pgxpool.Stat).TotalConns),
		gauge("max_connections", "Configured pool size", (*pgxpool.Stat).MaxConns),
	}
}
