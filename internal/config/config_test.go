package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("PUBLIC_BASE_URL", "https://shop.example.com/")
	t.Setenv("MESSAGE_RATE_INTERVAL", "45s")

	cfg, err := Load(writeEnvFile(t, "LOG_LEVEL=debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.Equal(t, "https://shop.example.com", cfg.Public.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.RateMsgs)
	assert.Equal(t, 1024, cfg.Audit.QueueSize)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123")
	t.Setenv("SERVER_PORT", "9000")

	cfg, err := Load(writeEnvFile(t, "SERVER_PORT=7000\nDB_DRIVER=sqlite\nDB_DSN=file::memory:\n"))
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			DB:      DBConfig{Driver: "postgres", DSN: "dsn"},
			JWT:     JWTConfig{Secret: "0123456789abcdef", AccessTTL: time.Hour},
			Storage: StorageConfig{Provider: "local"},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing secret", func(c *Config) { c.JWT.Secret = "" }},
		{"short secret", func(c *Config) { c.JWT.Secret = "short" }},
		{"zero ttl", func(c *Config) { c.JWT.AccessTTL = 0 }},
		{"unknown driver", func(c *Config) { c.DB.Driver = "mysql" }},
		{"empty dsn", func(c *Config) { c.DB.DSN = "" }},
		{"s3 without bucket", func(c *Config) { c.Storage.Provider = "s3" }},
		{"unknown storage", func(c *Config) { c.Storage.Provider = "ftp" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// writeEnvFile 写入临时 .env，测试结束后清理它注入的环境变量
func writeEnvFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	for _, line := range strings.Split(content, "\n") {
		key, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if _, present := os.LookupEnv(key); !present {
			t.Cleanup(func() { _ = os.Unsetenv(key) })
		}
	}
	return path
}
