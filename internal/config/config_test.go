package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Contains(t, cfg.DB.DSN, "dbname=matching")
	assert.Equal(t, "/api/v1", cfg.HTTP.BasePath)
	assert.Equal(t, "none", cfg.Events.Driver)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "prefs")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_BASE_PATH", "api/v2/")
	t.Setenv("EVENTS_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, "3306", cfg.DB.Port)
	assert.Equal(t, "svc:secret@tcp(localhost:3306)/prefs?parseTime=true&charset=utf8mb4&loc=UTC", cfg.DB.DSN)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "/api/v2", cfg.HTTP.BasePath)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Events.KafkaBrokers)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/x")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DB.DSN)
}

func TestLoad_SQLiteDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "local")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "local.db", cfg.DB.DSN)
	assert.Empty(t, cfg.DB.Port)
}

func TestNew_BadEnvValue(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")

	cfg, err := New()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to decode config")
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "8000", cfg.HTTP.Port)
}
