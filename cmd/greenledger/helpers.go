package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/greenledger/greenledger/internal/common"
	"github.com/greenledger/greenledger/internal/config"
	"github.com/greenledger/greenledger/internal/ledger"
	"github.com/greenledger/greenledger/internal/pipeline"
	"github.com/greenledger/greenledger/internal/storage"
)

// openStore builds the configured KV backend, wraps it in a Store, and
// seeds defaults on first run.
func openStore(ctx context.Context) (*storage.Store, error) {
	cfg, err := config.LoadStorageConfig()
	if err != nil {
		return nil, err
	}

	var kv storage.KV
	switch cfg.Backend {
	case config.BackendSQLite:
		kv, err = storage.NewSQLiteKV(cfg.Path)
	default:
		kv, err = storage.NewFileKV(cfg.Path)
	}
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("could not open %s storage at %s", cfg.Backend, cfg.Path), err)
	}

	store := storage.NewStore(kv)
	if err := store.Init(ctx); err != nil {
		_ = kv.Close()
		return nil, fmt.Errorf("initializing storage: %w", err)
	}
	return store, nil
}

// openLedger opens the store and wraps it in the write-side ledger.
func openLedger(ctx context.Context) (*ledger.Ledger, *storage.Store, error) {
	store, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ledger.New(store), store, nil
}

// shortID abbreviates uuids for table display; short ids pass through.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// parseSort splits a "field-direction" flag value like "date-desc".
func parseSort(value string) (pipeline.Field, pipeline.Direction, error) {
	idx := strings.LastIndex(value, "-")
	if idx < 0 {
		return "", "", fmt.Errorf("invalid sort %q (want field-direction, e.g. date-desc)", value)
	}

	field := pipeline.Field(value[:idx])
	dir := pipeline.Direction(value[idx+1:])

	switch field {
	case pipeline.FieldDate, pipeline.FieldAmount, pipeline.FieldCategory, pipeline.FieldType:
	default:
		return "", "", fmt.Errorf("unknown sort field %q", string(field))
	}
	switch dir {
	case pipeline.Asc, pipeline.Desc:
	default:
		return "", "", fmt.Errorf("unknown sort direction %q", string(dir))
	}
	return field, dir, nil
}
