package relay_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealbox/internal/relay"
)

func TestLoadConfig_MissingFileDefaults(t *testing.T) {
	cfg, err := relay.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 5, cfg.SweepMinutes)
	assert.Equal(t, 24, cfg.DefaultTTLHours)
	assert.Equal(t, "info", cfg.LogLevel)

	sc := cfg.StoreConfig()
	assert.Equal(t, 24*time.Hour, sc.DefaultTTL)
	assert.Equal(t, 5*time.Minute, sc.SweepInterval)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: \":9999\"\nsweep_minutes: 1\nlog_level: debug\n"), 0o600))

	cfg, err := relay.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, 1, cfg.SweepMinutes)
	assert.Equal(t, 24, cfg.DefaultTTLHours)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: [oops"), 0o600))

	_, err := relay.LoadConfig(path)
	assert.Error(t, err)
}
