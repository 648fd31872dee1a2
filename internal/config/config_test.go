package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"port": 5000,
		"jwt_secret": "s3cret",
		"database": {"dsn": "postgres://localhost/vitube"}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "s3cret", cfg.JWTSecret)

	// defaults
	require.Equal(t, 24*30, cfg.TokenTTLHours)
	require.Equal(t, "info", cfg.LogConfig.Level)
	require.Equal(t, "local", cfg.FileStore.Type)
	require.Equal(t, 128, cfg.ListCache.Size)
	require.Equal(t, 30, cfg.ListCache.TTLSeconds)
	require.Equal(t, 24, cfg.UploadMaxAgeHours)
	require.Equal(t, "0 * * * *", cfg.UploadCleanupSpec)
}

// There is no fallback signing secret; startup must fail without one.
func TestLoad_MissingJWTSecret(t *testing.T) {
	path := writeConfig(t, `{
		"port": 5000,
		"database": {"dsn": "postgres://localhost/vitube"}
	}`)

	_, err := Load(path)
	require.ErrorContains(t, err, "jwt_secret")
}

func TestLoad_MissingDatabase(t *testing.T) {
	path := writeConfig(t, `{"port": 5000, "jwt_secret": "s"}`)

	_, err := Load(path)
	require.ErrorContains(t, err, "database")
}

func TestLoad_MissingPort(t *testing.T) {
	path := writeConfig(t, `{"jwt_secret": "s", "database": {"dsn": "x"}}`)

	_, err := Load(path)
	require.ErrorContains(t, err, "port")
}
