package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "ES", cfg.Region)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, time.Second, cfg.RevealStep)
	assert.Equal(t, 5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.Dev)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("SOS_STORE", "sqlite")
	t.Setenv("SOS_SQLITE_PATH", "/tmp/x.db")
	t.Setenv("SOS_REVEAL_STEP", "250ms")
	t.Setenv("SOS_DEV", "true")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.StoreOptions().Driver)
	assert.Equal(t, "/tmp/x.db", cfg.StoreOptions().SQLitePath)
	assert.Equal(t, 250*time.Millisecond, cfg.RevealStep)
	assert.True(t, cfg.Dev)
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown store", env: map[string]string{"SOS_STORE": "redis"}},
		{name: "postgres without dsn", env: map[string]string{"SOS_STORE": "postgres"}},
		{name: "zero step", env: map[string]string{"SOS_REVEAL_STEP": "0s"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Parse()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("SOS_REVEAL_STEP", "soon")
		_, err := Parse()
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidConfig)
	})
}
