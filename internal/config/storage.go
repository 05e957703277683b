package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/greenledger/greenledger/internal/common"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// StorageConfig selects where the ledger keeps its data.
type StorageConfig struct {
	Backend string
	Path    string
}

// LoadStorageConfig reads the storage selection from Viper, applying
// defaults for anything unset. The default backend is a plain file
// directory under the user's data dir.
func LoadStorageConfig() (StorageConfig, error) {
	cfg := StorageConfig{
		Backend: viper.GetString("storage.backend"),
		Path:    viper.GetString("storage.path"),
	}

	if cfg.Backend == "" {
		cfg.Backend = BackendFile
	}
	if cfg.Path == "" {
		switch cfg.Backend {
		case BackendSQLite:
			cfg.Path = "~/.local/share/greenledger/greenledger.db"
		default:
			cfg.Path = "~/.local/share/greenledger"
		}
	}
	cfg.Path = ExpandPath(cfg.Path)

	if cfg.Backend != BackendFile && cfg.Backend != BackendSQLite {
		return StorageConfig{}, fmt.Errorf("%w: unknown storage backend %q (want %s or %s)",
			common.ErrInvalidConfig, cfg.Backend, BackendFile, BackendSQLite)
	}
	return cfg, nil
}
