package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data"), ExpandPath("~/data"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/tmp/ledger", ExpandPath("/tmp/ledger"))
	assert.Equal(t, "", ExpandPath(""))

	t.Setenv("LEDGER_DIR", "/srv/ledger")
	assert.Equal(t, "/srv/ledger/data", ExpandPath("$LEDGER_DIR/data"))
}

func TestLoadStorageConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := LoadStorageConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Contains(t, cfg.Path, "greenledger")
}

func TestLoadStorageConfigSQLiteDefaultPath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("storage.backend", "sqlite")

	cfg, err := LoadStorageConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Contains(t, cfg.Path, "greenledger.db")
}

func TestLoadStorageConfigRejectsUnknownBackend(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("storage.backend", "redis")

	_, err := LoadStorageConfig()
	assert.Error(t, err)
}
