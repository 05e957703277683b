package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenledger/greenledger/internal/common"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// maxAmount caps a single transaction, matching the entry form limit.
var maxAmount = decimal.NewFromInt(1_000_000)

// Transaction represents a single recorded income or expense.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        Date            `json:"date"`
	CreatedAt   time.Time       `json:"createdAt,omitempty"`
}

// Validate checks the transaction against every input rule and reports all
// violations at once. categories is the authoritative category list; the
// referenced category must exist and its type must match the transaction's.
func (t *Transaction) Validate(categories []Category) error {
	var violations []string

	if !t.Type.Valid() {
		violations = append(violations, fmt.Sprintf("type must be income or expense, got %q", t.Type))
	}
	if !t.Amount.IsPositive() {
		violations = append(violations, "amount must be greater than zero")
	} else if t.Amount.GreaterThanOrEqual(maxAmount) {
		violations = append(violations, "amount must be less than 1,000,000")
	}
	if t.Date.IsZero() {
		violations = append(violations, "date is missing or malformed")
	}

	switch cat, ok := FindCategory(categories, t.Category); {
	case t.Category == "":
		violations = append(violations, "category is required")
	case !ok:
		violations = append(violations, fmt.Sprintf("unknown category %q", t.Category))
	case t.Type.Valid() && !cat.Type.Matches(t.Type):
		violations = append(violations, fmt.Sprintf("category %q is a %s category, not %s", t.Category, cat.Type, t.Type))
	}

	return common.NewValidationError(violations)
}

// ParseAmount parses a user-supplied amount string into a decimal.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}
