package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/terrafoods-ems/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "/api/v1", cfg.API.Prefix)
	assert.Equal(t, 100, cfg.API.DefaultLimit)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Contains(t, cfg.HTTP.CORSOrigins, "http://localhost:5173")
	assert.True(t, cfg.Metrics.Enabled)
	assert.False(t, cfg.DB.ForceIPv4)
	assert.Empty(t, cfg.DB.FallbackDNS)
}

func TestLoad_VariablesDeEntornoTienenPrioridad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_PREFIX", "/api/v2/")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "/api/v2", cfg.API.Prefix)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_LimitesInconsistentes(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("API_DEFAULT_LIMIT", "200")
	t.Setenv("API_MAX_LIMIT", "50")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_IPv4ConFallbackDNS(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_FORCE_IPV4", "true")
	t.Setenv("DB_FALLBACK_DNS", "1.1.1.1:53")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.DB.ForceIPv4)
	assert.Equal(t, "1.1.1.1:53", cfg.DB.FallbackDNS)
}

func TestLoad_FallbackDNSSinPuerto(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_FALLBACK_DNS", "8.8.8.8")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "erp", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/erp?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgresql://u:p@h:1/d"
	assert.Equal(t, "postgresql://u:p@h:1/d", c.ConnectionString())
}
