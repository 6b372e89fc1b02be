package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battleship-engine/internal/engine"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, engine.Probability, cfg.DefaultEngine)
	assert.Zero(t, cfg.EngineSeed)
	assert.Equal(t, engine.DefaultOptions(), cfg.EngineOptions())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("ENGINE_SEED", "42")
	t.Setenv("DEFAULT_ENGINE", "parity")
	t.Setenv("W_BONUS", "50")
	t.Setenv("PLACEMENT_MAX_ATTEMPTS", "10")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, int64(42), cfg.EngineSeed)
	assert.Equal(t, engine.Parity, cfg.DefaultEngine)
	assert.Equal(t, engine.Options{
		MaxPlacementAttempts: 10,
		Weights:              engine.Weights{Free: 1, Bonus: 50},
	}, cfg.EngineOptions())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, key, value, contains string
	}{
		{"bad int", "W_FREE", "lots", "parse env:"},
		{"unknown engine", "DEFAULT_ENGINE", "minimax", "DEFAULT_ENGINE"},
		{"bad format", "LOG_FORMAT", "xml", "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
