package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "3000", cfg.StudentPort)
	assert.Equal(t, "5000", cfg.TechnicianPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "studentsdata", cfg.Database.Name)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STUDENT_PORT", "8081")
	t.Setenv("TECHNICIAN_PORT", "8082")
	t.Setenv("DB_PORT", "15432")
	t.Setenv("SESSION_TTL", "10m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.StudentPort)
	assert.Equal(t, "8082", cfg.TechnicianPort)
	assert.Equal(t, 15432, cfg.Database.Port)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("SESSION_SECRET", "real-secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		User:     "svc",
		Password: "pw",
		Name:     "studentsdata",
		Port:     5432,
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal user=svc password=pw dbname=studentsdata port=5432 sslmode=require",
		db.DSN())
}
