package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, 10000, cfg.Server.SessionLimit)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "supershares", cfg.Database.DBName)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "supershares.signals", cfg.Kafka.SignalTopic)
	assert.Equal(t, 15*time.Second, cfg.MarketData.Timeout)
	assert.Equal(t, 128, cfg.MarketData.SeriesCacheSize)
	assert.Equal(t, 64, cfg.MarketData.FundamentalsCacheSize)
	assert.Equal(t, 8, cfg.Scoring.Workers)
	assert.Equal(t, 120, cfg.Scoring.LookbackDays)
	assert.Equal(t, "TRADER", cfg.Scoring.Profile)
	assert.Equal(t, "file", cfg.Portfolio.Store)
	assert.Equal(t, "portfolio.json", cfg.Portfolio.Path)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("REDIS_TTL", "5m")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("SCORING_WORKERS", "4")
	t.Setenv("PORTFOLIO_STORE", "Postgres")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 4, cfg.Scoring.Workers)
	assert.Equal(t, "postgres", cfg.Portfolio.Store)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SCORING_WORKERS", "many")
	t.Setenv("KAFKA_ENABLED", "maybe")
	t.Setenv("MARKETDATA_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 8, cfg.Scoring.Workers)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 15*time.Second, cfg.MarketData.Timeout)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/n?sslmode=disable", d.ConnectionString())
}
