package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenledger/greenledger/internal/common"
)

var testCategories = []Category{
	{ID: "salary", Name: "Salary", Type: CategoryIncome},
	{ID: "food", Name: "Food & Dining", Type: CategoryExpense},
}

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{
		Type:     TypeExpense,
		Amount:   decimal.NewFromFloat(12.50),
		Category: "food",
		Date:     NewDate(2024, time.September, 15),
	}

	tests := []struct {
		mutate     func(*Transaction)
		name       string
		violations int
	}{
		{name: "valid transaction", mutate: func(_ *Transaction) {}, violations: 0},
		{
			name:       "invalid type",
			mutate:     func(tx *Transaction) { tx.Type = "transfer" },
			violations: 1,
		},
		{
			name:       "zero amount",
			mutate:     func(tx *Transaction) { tx.Amount = decimal.Zero },
			violations: 1,
		},
		{
			name:       "negative amount",
			mutate:     func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-5) },
			violations: 1,
		},
		{
			name:       "amount over ceiling",
			mutate:     func(tx *Transaction) { tx.Amount = decimal.NewFromInt(2_000_000) },
			violations: 1,
		},
		{
			name:       "missing date",
			mutate:     func(tx *Transaction) { tx.Date = Date{} },
			violations: 1,
		},
		{
			name:       "missing category",
			mutate:     func(tx *Transaction) { tx.Category = "" },
			violations: 1,
		},
		{
			name:       "unknown category",
			mutate:     func(tx *Transaction) { tx.Category = "gambling" },
			violations: 1,
		},
		{
			name:       "category type mismatch",
			mutate:     func(tx *Transaction) { tx.Category = "salary" },
			violations: 1,
		},
		{
			name: "multiple violations reported together",
			mutate: func(tx *Transaction) {
				tx.Type = "bogus"
				tx.Amount = decimal.Zero
				tx.Category = ""
				tx.Date = Date{}
			},
			violations: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid
			tt.mutate(&tx)
			err := tx.Validate(testCategories)

			if tt.violations == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *common.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Len(t, verr.Violations, tt.violations)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-09-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-15", d.String())

	_, err = ParseDate("15/09/2024")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.January, 5)
	raw, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-05"`, string(raw))

	var back Date
	require.NoError(t, back.UnmarshalJSON(raw))
	assert.True(t, back.Equal(d.Time))
}
