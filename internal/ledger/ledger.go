// Package ledger provides the mutating operations over stored transactions
// and budgets. It is a thin layer over the storage accessor; all derivation
// (totals, filtering, insights) lives in the pure engine packages.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/storage"
)

// Ledger owns transaction and budget mutations.
type Ledger struct {
	store *storage.Store
	now   func() time.Time
	newID func() string
}

// New creates a Ledger over the given store.
func New(store *storage.Store) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Input is a transaction as supplied by the user, before an id and
// creation timestamp are assigned.
type Input struct {
	Type        model.TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        model.Date
}

// Add validates the input and appends a new transaction. Validation
// failures report every violated rule and nothing is written.
func (l *Ledger) Add(ctx context.Context, in Input) (*model.Transaction, error) {
	tx := model.Transaction{
		ID:          l.newID(),
		Type:        in.Type,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		CreatedAt:   l.now(),
	}

	if err := tx.Validate(l.store.Categories(ctx)); err != nil {
		return nil, err
	}

	txns := append(l.store.Transactions(ctx), tx)
	if err := l.store.SaveTransactions(ctx, txns); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	slog.Debug("added transaction", "id", tx.ID, "type", tx.Type, "amount", tx.Amount)
	return &tx, nil
}

// AddBatch validates and appends several transactions at once, saving the
// collection a single time. Used by statement imports.
func (l *Ledger) AddBatch(ctx context.Context, inputs []Input) ([]model.Transaction, error) {
	cats := l.store.Categories(ctx)
	now := l.now()

	added := make([]model.Transaction, 0, len(inputs))
	for i, in := range inputs {
		tx := model.Transaction{
			ID:          l.newID(),
			Type:        in.Type,
			Amount:      in.Amount,
			Category:    in.Category,
			Description: in.Description,
			Date:        in.Date,
			CreatedAt:   now,
		}
		if err := tx.Validate(cats); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		added = append(added, tx)
	}

	txns := append(l.store.Transactions(ctx), added...)
	if err := l.store.SaveTransactions(ctx, txns); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}
	return added, nil
}

// Patch holds the fields of a partial update. Nil fields keep their
// current value.
type Patch struct {
	Type        *model.TransactionType
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	Date        *model.Date
}

// Update merges the patch into the transaction with the given id and
// re-validates the result. Returns (nil, nil) when the id is unknown;
// not-found is a condition, not an error.
func (l *Ledger) Update(ctx context.Context, id string, p Patch) (*model.Transaction, error) {
	txns := l.store.Transactions(ctx)
	idx := -1
	for i := range txns {
		if txns[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	merged := txns[idx]
	if p.Type != nil {
		merged.Type = *p.Type
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.Category != nil {
		merged.Category = *p.Category
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}

	if err := merged.Validate(l.store.Categories(ctx)); err != nil {
		return nil, err
	}

	txns[idx] = merged
	if err := l.store.SaveTransactions(ctx, txns); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	slog.Debug("updated transaction", "id", id)
	return &merged, nil
}

// Delete removes the transaction with the given id, reporting whether it
// existed.
func (l *Ledger) Delete(ctx context.Context, id string) (bool, error) {
	txns := l.store.Transactions(ctx)
	for i := range txns {
		if txns[i].ID != id {
			continue
		}
		txns = append(txns[:i], txns[i+1:]...)
		if err := l.store.SaveTransactions(ctx, txns); err != nil {
			return false, fmt.Errorf("failed to save transactions: %w", err)
		}
		slog.Debug("deleted transaction", "id", id)
		return true, nil
	}
	return false, nil
}

// Get returns the transaction with the given id, if present.
func (l *Ledger) Get(ctx context.Context, id string) (*model.Transaction, bool) {
	for _, tx := range l.store.Transactions(ctx) {
		if tx.ID == id {
			return &tx, true
		}
	}
	return nil, false
}

// Transactions lists all stored transactions.
func (l *Ledger) Transactions(ctx context.Context) []model.Transaction {
	return l.store.Transactions(ctx)
}

// Categories lists the category reference data.
func (l *Ledger) Categories(ctx context.Context) []model.Category {
	return l.store.Categories(ctx)
}

// Settings returns the stored settings.
func (l *Ledger) Settings(ctx context.Context) model.Settings {
	return l.store.Settings(ctx)
}

// SetBudget configures the monthly ceiling for an expense category.
// A zero amount removes the budget entirely; "no budget" is the absence
// of the key, never a stored zero.
func (l *Ledger) SetBudget(ctx context.Context, categoryID string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("budget cannot be negative")
	}

	cat, ok := model.FindCategory(l.store.Categories(ctx), categoryID)
	if !ok {
		return fmt.Errorf("unknown category %q", categoryID)
	}
	if cat.Type != model.CategoryExpense {
		return fmt.Errorf("budgets apply to expense categories; %q is %s", categoryID, cat.Type)
	}

	set := l.store.Settings(ctx)
	if set.Budgets == nil {
		set.Budgets = model.Budgets{}
	}
	if amount.IsZero() {
		delete(set.Budgets, categoryID)
	} else {
		set.Budgets[categoryID] = amount
	}

	if err := l.store.SaveSettings(ctx, set); err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

// ClearBudget removes the budget for a category.
func (l *Ledger) ClearBudget(ctx context.Context, categoryID string) error {
	return l.SetBudget(ctx, categoryID, decimal.Zero)
}
