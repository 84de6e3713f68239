package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_HOST", "DB_PORT", "DB_NAME", "SQLITE_PATH", "AI_PROVIDER", "SEEN_HEADLINE_TTL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "", cfg.Store.Host)
	assert.Equal(t, 5432, cfg.Store.Port)
	assert.Equal(t, "predictions", cfg.Store.Name)
	assert.Equal(t, "predictions.db", cfg.Store.SQLitePath)
	assert.Equal(t, "auto", cfg.AIProvider)
	assert.Equal(t, 168*time.Hour, cfg.SeenTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_SSL", "true")
	t.Setenv("AI_PROVIDER", "anthropic")
	t.Setenv("SEEN_HEADLINE_TTL", "24h")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db.internal", cfg.Store.Host)
	assert.Equal(t, 5433, cfg.Store.Port)
	assert.Equal(t, true, cfg.Store.SSL)
	assert.Equal(t, "anthropic", cfg.AIProvider)
	assert.Equal(t, 24*time.Hour, cfg.SeenTTL)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("SEEN_HEADLINE_TTL", "soon")

	cfg := Load()
	assert.Equal(t, 5432, cfg.Store.Port)
	assert.Equal(t, 168*time.Hour, cfg.SeenTTL)
}
