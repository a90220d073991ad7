package persistence

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/infrastructure/config"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
)

func TestOpenDatabase(t *testing.T) {
	cfg := &config.DatabaseConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 5,
		ConnMaxIdleTime: 1,
		LogLevel:        "silent",
		SlowThreshold:   200 * time.Millisecond,
	}

	db, err := OpenDatabase(sqlite.Open(":memory:"), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.NoError(t, db.Ping())

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.MaxOpenConnections)
	assert.Equal(t, stats.OpenConnections, stats.InUse+stats.Idle)

	require.NoError(t, db.Close())
	assert.Error(t, db.Ping())
}

func TestConnectionStats_JSON(t *testing.T) {
	stats := ConnectionStats{
		MaxOpenConnections: 25,
		OpenConnections:    10,
		InUse:              6,
		Idle:               4,
		WaitCount:          3,
		WaitDuration:       time.Second,
	}

	raw, err := json.Marshal(stats)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(25), decoded["max_open_connections"])
	assert.Equal(t, float64(6), decoded["in_use"])
	assert.Equal(t, float64(time.Second), decoded["wait_duration"])
}
