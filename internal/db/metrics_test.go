package db

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/acadservice/internal/config"
)

func lazyPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Host = "127.0.0.1"
	cfg.Database.Port = "1"
	cfg.Database.User = "nobody"
	cfg.Database.DBName = "none"
	cfg.Database.SSLMode = "disable"
	cfg.Database.MaxOpenConns = 4
	cfg.Database.ConnMaxLifetime = "1h"

	database, err := NewPostgresDB(cfg)
	require.NoError(t, err)
	t.Cleanup(database.Close)
	return database.Pool
}

func TestPoolCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(PoolCollectors(lazyPool(t))...)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 4)

	values := map[string]float64{}
	for _, mf := range families {
		values[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
	}
	assert.Equal(t, float64(4), values["acad_db_pool_max_connections"])
	assert.Equal(t, float64(0), values["acad_db_pool_acquired_connections"])
}
