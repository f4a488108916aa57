package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)

	assert.Equal(t, ":8181", cfg.Addr)
	assert.True(t, cfg.Frontend.Enabled)
	assert.Equal(t, "frontend", cfg.Frontend.Dir)
	assert.Equal(t, "fintrack.db", cfg.Database.Path)
	assert.Equal(t, 24*14, cfg.Session.TTLHours)
	assert.False(t, cfg.Session.SecureCookie)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FINTRACK_ADDR", ":9090")
	t.Setenv("FINTRACK_DB_PATH", "/tmp/test.db")
	t.Setenv("FINTRACK_SESSION_TTLHOURS", "1")

	cfg, err := Load("does-not-exist.yaml")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, 1, cfg.Session.TTLHours)
}
