package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Creatorverse", cfg.AppName)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "logs:creatorverse", cfg.AuditLogKey)
	assert.Equal(t, 168*time.Hour, cfg.AuditRetention())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_HTTP_PORT", "9090")
	t.Setenv("APP_DB_DRIVER", "postgres")
	t.Setenv("APP_POSTGRES_DSN", "host=db")
	t.Setenv("APP_AUDIT_LOG_MAX", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=db", cfg.PostgresDSN)
	assert.Equal(t, int64(50), cfg.AuditLogMax)
}

func TestLoad_InvalidRetention(t *testing.T) {
	t.Setenv("APP_AUDIT_LOG_RETENTION", "forever")

	_, err := Load()
	assert.ErrorContains(t, err, "audit_log_retention")
}

func TestDialector_RequiresDSN(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres", "sqlserver"} {
		_, err := Dialector(&Config{DBDriver: driver})
		assert.Error(t, err, driver)
	}

	_, err := Dialector(&Config{DBDriver: "oracle"})
	assert.ErrorContains(t, err, "unknown db_driver")

	d, err := Dialector(&Config{DBDriver: "sqlite", SQLitePath: "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())
}

func TestInitRedis_DisabledWithoutAddr(t *testing.T) {
	rdb, err := InitRedis(context.Background(), &Config{})
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestNewLogger_Levels(t *testing.T) {
	l, err := NewLogger("warn", "")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(-1)) // debug
	assert.True(t, l.Core().Enabled(1))   // warn
}
