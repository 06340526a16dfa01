package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kasir/internal/config"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "secret")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.AuthRequired)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, 50, cfg.OrderListLimit)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromViper_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]interface{}
		want   string
	}{
		{"unknown driver", map[string]interface{}{"DB_DRIVER": "mysql", "JWT_SECRET": "s"}, "DB_DRIVER"},
		{"empty dsn", map[string]interface{}{"DATABASE_DSN": "", "JWT_SECRET": "s"}, "DATABASE_DSN"},
		{"missing secret", map[string]interface{}{"AUTH_REQUIRED": true}, "JWT_SECRET"},
		{"bad limit", map[string]interface{}{"JWT_SECRET": "s", "ORDER_LIST_LIMIT": 0}, "ORDER_LIST_LIMIT"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tc.values {
				v.Set(k, val)
			}
			_, err := config.FromViper(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestFromViper_AuthDisabledWithoutSecret(t *testing.T) {
	v := viper.New()
	v.Set("AUTH_REQUIRED", false)
	v.Set("DB_DRIVER", "sqlite")
	v.Set("DATABASE_DSN", "file::memory:")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.False(t, cfg.AuthRequired)
	assert.Equal(t, "sqlite", cfg.DBDriver)
}

func TestLoad_ConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kasir.yaml")
	content := "APP_PORT: \":9090\"\nDB_DRIVER: sqlite\nDATABASE_DSN: \"file::memory:\"\nJWT_SECRET: from-file\nORDER_LIST_LIMIT: 20\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("KASIR_CONFIG", path)
	t.Setenv("ORDER_LIST_LIMIT", "5")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 5, cfg.OrderListLimit)
}
