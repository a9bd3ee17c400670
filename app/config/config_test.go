package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "data/badger", cfg.DBPath)
	assert.Equal(t, "inkwell_session", cfg.SessionCookie)
	assert.Equal(t, 10, cfg.PerPage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "/tmp/store")
	t.Setenv("PER_PAGE", "25")
	t.Setenv("LOG_FORMAT", "console")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/store", cfg.DBPath)
	assert.Equal(t, 25, cfg.PerPage)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("PER_PAGE", "lots")

	cfg := Load()
	assert.Equal(t, 10, cfg.PerPage)
}
