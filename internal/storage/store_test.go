package storage

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenledger/greenledger/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	return NewStore(kv)
}

func TestStoreInitSeedsDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Init(ctx))

	cats := store.Categories(ctx)
	assert.Len(t, cats, 10)
	assert.Equal(t, "salary", cats[0].ID)

	set := store.Settings(ctx)
	assert.Equal(t, "$", set.Currency)
	assert.Equal(t, "month", set.DashboardPeriod)
	assert.Equal(t, 7, set.Budgets.Configured())

	// Re-running Init must not clobber user data.
	custom := set
	custom.Currency = "€"
	require.NoError(t, store.SaveSettings(ctx, custom))
	require.NoError(t, store.Init(ctx))
	assert.Equal(t, "€", store.Settings(ctx).Currency)
}

func TestStoreTransactionsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.Empty(t, store.Transactions(ctx))

	txns := []model.Transaction{
		{
			ID:          "tx1",
			Type:        model.TypeExpense,
			Amount:      decimal.NewFromFloat(85.50),
			Category:    "food",
			Description: "Grocery Shopping",
			Date:        model.NewDate(2024, time.September, 15),
			CreatedAt:   time.Now(),
		},
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got := store.Transactions(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "tx1", got[0].ID)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromFloat(85.50)))
	assert.Equal(t, "2024-09-15", got[0].Date.String())
}

func TestSnapshotExportImport(t *testing.T) {
	src := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, src.Init(ctx))

	txns := []model.Transaction{{
		ID:       "tx1",
		Type:     model.TypeIncome,
		Amount:   decimal.NewFromInt(1000),
		Category: "salary",
		Date:     model.NewDate(2024, time.September, 1),
	}}
	require.NoError(t, src.SaveTransactions(ctx, txns))

	now := time.Date(2024, time.September, 20, 12, 0, 0, 0, time.UTC)
	snap := src.Export(ctx, now)
	assert.Equal(t, now, snap.ExportDate)
	require.NotNil(t, snap.Transactions)
	require.NotNil(t, snap.Categories)
	require.NotNil(t, snap.Settings)

	dst := newTestStore(t)
	require.NoError(t, dst.Init(ctx))
	require.NoError(t, dst.Import(ctx, snap))
	assert.Len(t, dst.Transactions(ctx), 1)
}

func TestSnapshotPartialImportLeavesOtherFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Init(ctx))

	require.NoError(t, store.SaveTransactions(ctx, []model.Transaction{{ID: "keep"}}))

	// A snapshot carrying only settings must not touch transactions.
	set := model.Settings{Currency: "£", Theme: "dark", DashboardPeriod: "year", Budgets: model.Budgets{}}
	require.NoError(t, store.Import(ctx, Snapshot{Settings: &set}))

	assert.Equal(t, "£", store.Settings(ctx).Currency)
	require.Len(t, store.Transactions(ctx), 1)
	assert.Equal(t, "keep", store.Transactions(ctx)[0].ID)
}
