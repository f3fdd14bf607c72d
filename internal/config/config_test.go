package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DEMO_AMOUNT", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg := Load()

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, 12345, cfg.DemoAmount)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.OTLPEndpoint)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("DEMO_AMOUNT", "-7")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://tempo:4318")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, -7, cfg.DemoAmount)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.Equal(t, "http://tempo:4318", cfg.OTLPEndpoint)
}

func TestLoadMalformedFallsBack(t *testing.T) {
	t.Setenv("DEMO_AMOUNT", "lots")
	t.Setenv("SHUTDOWN_TIMEOUT", "-1s")

	cfg := Load()

	assert.Equal(t, 12345, cfg.DemoAmount)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}
