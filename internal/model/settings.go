package model

import "github.com/shopspring/decimal"

// Budgets maps expense category ids to monthly spending ceilings.
// An absent key means no budget; a stored zero is likewise treated as
// unconfigured so it never participates in over-budget comparisons.
type Budgets map[string]decimal.Decimal

// Budget returns the configured ceiling for a category, if any.
func (b Budgets) Budget(categoryID string) (decimal.Decimal, bool) {
	amount, ok := b[categoryID]
	if !ok || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// Configured counts the categories with a positive budget.
func (b Budgets) Configured() int {
	n := 0
	for _, amount := range b {
		if amount.IsPositive() {
			n++
		}
	}
	return n
}

// Settings holds user preferences and budget configuration.
type Settings struct {
	Currency        string  `json:"currency"`
	Theme           string  `json:"theme"`
	DashboardPeriod string  `json:"dashboardPeriod"`
	Budgets         Budgets `json:"budgets"`
}
