package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/greenledger/greenledger/internal/model"
)

// Store is the typed accessor over the key-value collaborator.
//
// Reads degrade: a missing key, unreachable backend, or corrupt blob is
// logged and answered with a safe default, so callers above the accessor
// boundary never see storage errors on the read path. Writes propagate
// errors; callers must not assume a write succeeded without confirmation.
type Store struct {
	kv KV
}

// NewStore wraps a key-value backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Init seeds default reference data on first run and stamps the schema
// version. Failure here blocks startup; nothing else is fatal.
func (s *Store) Init(ctx context.Context) error {
	if _, ok, err := s.kv.Get(ctx, KeyCategories); err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	} else if !ok {
		if err := s.SaveCategories(ctx, DefaultCategories()); err != nil {
			return fmt.Errorf("storage initialization failed: %w", err)
		}
	}

	if _, ok, err := s.kv.Get(ctx, KeySettings); err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	} else if !ok {
		if err := s.SaveSettings(ctx, DefaultSettings()); err != nil {
			return fmt.Errorf("storage initialization failed: %w", err)
		}
	}

	if err := s.kv.Set(ctx, KeyVersion, []byte(`"`+SchemaVersion+`"`)); err != nil {
		return fmt.Errorf("storage initialization failed: %w", err)
	}

	slog.Debug("storage initialized", "version", SchemaVersion)
	return nil
}

// Close releases the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// Transactions returns all stored transactions, or an empty collection
// when the key is absent or unreadable.
func (s *Store) Transactions(ctx context.Context) []model.Transaction {
	var txns []model.Transaction
	if !s.read(ctx, KeyTransactions, &txns) {
		return nil
	}
	return txns
}

// SaveTransactions overwrites the whole transaction collection.
func (s *Store) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	return s.write(ctx, KeyTransactions, txns)
}

// Categories returns the category list, falling back to the defaults when
// nothing readable is stored.
func (s *Store) Categories(ctx context.Context) []model.Category {
	var cats []model.Category
	if !s.read(ctx, KeyCategories, &cats) || len(cats) == 0 {
		return DefaultCategories()
	}
	return cats
}

// SaveCategories overwrites the category list.
func (s *Store) SaveCategories(ctx context.Context, cats []model.Category) error {
	return s.write(ctx, KeyCategories, cats)
}

// Settings returns the stored settings, falling back to defaults.
func (s *Store) Settings(ctx context.Context) model.Settings {
	var set model.Settings
	if !s.read(ctx, KeySettings, &set) {
		return DefaultSettings()
	}
	if set.Currency == "" {
		set.Currency = "$"
	}
	if set.Budgets == nil {
		set.Budgets = model.Budgets{}
	}
	return set
}

// SaveSettings overwrites the settings object.
func (s *Store) SaveSettings(ctx context.Context, set model.Settings) error {
	return s.write(ctx, KeySettings, set)
}

// read unmarshals the blob at key into out, reporting whether a usable
// value was found. Failures are logged, not returned.
func (s *Store) read(ctx context.Context, key string, out any) bool {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		slog.Error("failed to read from storage, using default", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		slog.Error("corrupt data in storage, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, data)
}
