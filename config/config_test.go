package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CRYPTOPAY_API_TOKEN", " 1234:AA ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "1234:AA", cfg.APIToken)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.Network)
	assert.False(t, cfg.Metrics)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CRYPTOPAY_NETWORK=Testnet\nCRYPTOPAY_TIMEOUT=5s\n"), 0600))
	t.Setenv("CRYPTOPAY_TIMEOUT", "7s")
	// godotenv sets variables from the file; make sure they are cleaned up
	t.Cleanup(func() { _ = os.Unsetenv("CRYPTOPAY_NETWORK") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, NetworkTestnet, cfg.Network)
	assert.Equal(t, 7*time.Second, cfg.Timeout, "process environment wins over .env")
}

func TestLoadRejectsUnknownNetwork(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CRYPTOPAY_NETWORK", "devnet")

	_, err := Load()
	assert.ErrorContains(t, err, "devnet")
}
