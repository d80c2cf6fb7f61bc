package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("JWT_SECRET_KEY", "segredo")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, 480*time.Minute, cfg.TokenExpiry)
	assert.Equal(t, 100, cfg.RateLimitMaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitPeriod)
	assert.Equal(t, 20, cfg.LowStockThreshold)
	assert.False(t, cfg.StrictWorkflow)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "REDIS")
	t.Setenv("JWT_SECRET_KEY", "segredo")
	t.Setenv("LOW_STOCK_THRESHOLD", "5")
	t.Setenv("STRICT_WORKFLOW", "true")
	t.Setenv("DB_TIMEOUT_SEC", "abc")

	cfg := LoadConfig()

	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, 5, cfg.LowStockThreshold)
	assert.True(t, cfg.StrictWorkflow)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout, "valor inválido cai no padrão")
}

func TestLocation_FallsBackToUTC(t *testing.T) {
	cfg := &Config{ReportTimezone: "Lugar/Nenhum"}
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestResolveJWTSecret(t *testing.T) {
	secret, err := resolveJWTSecret("production", "chave-real")
	assert.NoError(t, err)
	assert.Equal(t, "chave-real", secret)

	secret, err = resolveJWTSecret("development", "")
	assert.NoError(t, err)
	assert.Equal(t, devJWTSecret, secret)

	secret, err = resolveJWTSecret("production", "")
	assert.Error(t, err)
	assert.Empty(t, secret, "produção nunca cai na chave de desenvolvimento")
}
