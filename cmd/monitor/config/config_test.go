package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/price-monitor/cmd/monitor/config"
	"github.com/caarlos0/env/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitParseDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/price_monitor")
	t.Setenv("EXTRACTOR_URL", "http://localhost:8000")
	t.Setenv("RABBITMQ_URL", "amqp://localhost")
	t.Setenv("SMTP_HOST", "smtp.example.com")

	var cfg config.Config
	require.NoError(t, env.Parse(&cfg), "should parse config")

	assert.Equal(t, 16, cfg.WorkerPoolSize)
	assert.Equal(t, 10*time.Second, cfg.Extractor.ConnectTimeout)
	assert.Equal(t, 60*time.Second, cfg.Extractor.ReadTimeout)
	assert.Equal(t, "price-monitor.refresh", cfg.RabbitMQ.Queue)
	assert.Equal(t, "pm.cmd.refresh", cfg.RabbitMQ.RoutingKey)
	assert.Equal(t, "@every 1h", cfg.Scheduler.Schedule)
	assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "MonitoraPreco", cfg.SMTP.FromName)
}

func TestUnitParseMissingRequired(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "EXTRACTOR_URL", "RABBITMQ_URL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var cfg config.Config

	assert.Error(t, env.Parse(&cfg), "should require connection urls")
}
