package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/greenledger/greenledger/internal/model"
)

// Snapshot is the whole-state export document. Pointer fields distinguish
// "absent" from "empty" so a partial document imports only what it carries.
type Snapshot struct {
	ExportDate   time.Time            `json:"exportDate"`
	Transactions *[]model.Transaction `json:"transactions,omitempty"`
	Categories   *[]model.Category    `json:"categories,omitempty"`
	Settings     *model.Settings      `json:"settings,omitempty"`
}

// Export captures the full application state.
func (s *Store) Export(ctx context.Context, now time.Time) Snapshot {
	txns := s.Transactions(ctx)
	cats := s.Categories(ctx)
	set := s.Settings(ctx)
	return Snapshot{
		ExportDate:   now,
		Transactions: &txns,
		Categories:   &cats,
		Settings:     &set,
	}
}

// Import overwrites each field the snapshot carries; absent fields are
// left untouched, so a partial document imports only what it names.
func (s *Store) Import(ctx context.Context, snap Snapshot) error {
	if snap.Categories != nil {
		if err := s.SaveCategories(ctx, *snap.Categories); err != nil {
			return fmt.Errorf("import categories: %w", err)
		}
	}
	if snap.Settings != nil {
		if err := s.SaveSettings(ctx, *snap.Settings); err != nil {
			return fmt.Errorf("import settings: %w", err)
		}
	}
	if snap.Transactions != nil {
		if err := s.SaveTransactions(ctx, *snap.Transactions); err != nil {
			return fmt.Errorf("import transactions: %w", err)
		}
	}
	return nil
}
