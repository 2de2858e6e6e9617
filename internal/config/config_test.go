package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable applyEnv reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "ENV", "SERVER_BASE_PATH", "LOG_LEVEL",
		"DB_DRIVER", "DATABASE_URL",
		"REDIS_URL", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
		"JWT_SECRET", "SECRET_KEY", "CORS_ORIGINS",
		"LLM_BASE_URL", "LLM_API_KEY", "OPENROUTER_API_KEY", "LLM_MODEL",
		"S3_BUCKET", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_ENDPOINT",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "/api", cfg.Server.BasePath)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "@every 1m", cfg.Jobs.RoundRepairSchedule)
	assert.Equal(t, 32, cfg.Notify.SendBufferLen)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoad_ParsesYaml(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: "9090"
  base_path: /consensus
  shutdown_timeout: 3s
database:
  driver: sqlite
  name: consensus.db
redis:
  host: cache
  port: 6380
generation:
  default_model: test/model
  max_tokens: 512
jobs:
  round_repair_schedule: "*/5 * * * *"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "/consensus", cfg.Server.BasePath)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "consensus.db", cfg.Database.GetDSN())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "test/model", cfg.Generation.DefaultModel)
	assert.Equal(t, 512, cfg.Generation.MaxTokens)
	assert.Equal(t, "*/5 * * * *", cfg.Jobs.RoundRepairSchedule)
	// untouched sections keep their defaults
	assert.Equal(t, 60*time.Second, cfg.Generation.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: "9090"
jwt:
  secret: from-file
`)
	t.Setenv("PORT", "7000")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/consensus")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("OPENROUTER_API_KEY", "router-key")
	t.Setenv("REDIS_PORT", "not-a-number")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "postgres://u:p@db:5432/consensus", cfg.Database.GetDSN())
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "router-key", cfg.Generation.APIKey)
	assert.Equal(t, 0, cfg.Redis.Port)
}

func TestLoad_SecretKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("SECRET_KEY", "legacy")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.JWT.Secret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unsupported driver", "database:\n  driver: mysql\n"},
		{"empty port", "server:\n  port: \"\"\n"},
		{"malformed yaml", "server: [unclosed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   "postgres",
		Host:     "db",
		Port:     5432,
		User:     "consensus",
		Password: "secret",
		Name:     "consensus",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=consensus password=secret dbname=consensus sslmode=disable TimeZone=UTC", cfg.GetDSN())
}
