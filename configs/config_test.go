package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PORT", "")

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.TextModel)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "@every 10m", cfg.TokenSweepSchedule)
	assert.False(t, cfg.R2.Enabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("POSTGRES_URI", "postgres://localhost/nexus")
	t.Setenv("SEED_DEMO", "true")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_ACCESS_KEY", "ak")
	t.Setenv("R2_SECRET_KEY", "sk")
	t.Setenv("R2_BUCKET_NAME", "media")
	t.Setenv("R2_PUBLIC_URL", "https://cdn.example.com/")

	cfg := LoadConfig()

	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost/nexus", cfg.PostgresURI)
	assert.True(t, cfg.SeedDemo)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.True(t, cfg.R2.Enabled())
	assert.Equal(t, "https://cdn.example.com", cfg.R2.PublicURL)
}
