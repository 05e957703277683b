// Package analytics computes aggregate figures from a flat list of
// transactions. Every function is a pure read; nothing here mutates the
// collection, and empty or missing data degrades to zero values rather
// than errors.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/period"
)

var hundred = decimal.NewFromInt(100)

// TotalIncome sums income amounts with dates inside r.
func TotalIncome(txns []model.Transaction, r period.Range) decimal.Decimal {
	return sumByType(txns, model.TypeIncome, r)
}

// TotalExpenses sums expense amounts with dates inside r.
func TotalExpenses(txns []model.Transaction, r period.Range) decimal.Decimal {
	return sumByType(txns, model.TypeExpense, r)
}

// Balance is income minus expenses for the range.
func Balance(txns []model.Transaction, r period.Range) decimal.Decimal {
	return TotalIncome(txns, r).Sub(TotalExpenses(txns, r))
}

func sumByType(txns []model.Transaction, t model.TransactionType, r period.Range) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txns {
		if tx.Type == t && r.Contains(tx.Date) {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// ExpensesByCategory sums expense amounts per category within r. Every
// expense category id appears in the result, zero-spend ones included, so
// consumers can iterate the category list without existence checks.
// Transactions referencing ids absent from cats accumulate nowhere.
func ExpensesByCategory(txns []model.Transaction, cats []model.Category, r period.Range) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, c := range model.CategoriesByType(cats, model.CategoryExpense) {
		byCategory[c.ID] = decimal.Zero
	}

	for _, tx := range txns {
		if tx.Type != model.TypeExpense || !r.Contains(tx.Date) {
			continue
		}
		if current, ok := byCategory[tx.Category]; ok {
			byCategory[tx.Category] = current.Add(tx.Amount)
		}
	}
	return byCategory
}

// TopCategory identifies the expense category with the highest spend.
type TopCategory struct {
	ID     string
	Name   string
	Amount decimal.Decimal
}

// TopSpendingCategory returns the category with the strictly greatest
// amount above zero. Ties resolve to the first category in list order.
// ok is false when every amount is zero.
func TopSpendingCategory(byCategory map[string]decimal.Decimal, cats []model.Category) (TopCategory, bool) {
	var top TopCategory
	found := false

	for _, c := range model.CategoriesByType(cats, model.CategoryExpense) {
		amount, ok := byCategory[c.ID]
		if !ok || !amount.IsPositive() {
			continue
		}
		if !found || amount.GreaterThan(top.Amount) {
			top = TopCategory{ID: c.ID, Name: c.Name, Amount: amount}
			found = true
		}
	}
	return top, found
}

// MonthTotals is one slot of a monthly series.
type MonthTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// MonthlySeries buckets the year's transactions into twelve Jan..Dec
// slots. Transactions outside the year are excluded.
func MonthlySeries(txns []model.Transaction, year int) [12]MonthTotals {
	var series [12]MonthTotals
	for i := range series {
		series[i] = MonthTotals{Income: decimal.Zero, Expenses: decimal.Zero}
	}

	for _, tx := range txns {
		if tx.Date.IsZero() || tx.Date.Year() != year {
			continue
		}
		slot := &series[int(tx.Date.Month())-1]
		switch tx.Type {
		case model.TypeIncome:
			slot.Income = slot.Income.Add(tx.Amount)
		case model.TypeExpense:
			slot.Expenses = slot.Expenses.Add(tx.Amount)
		}
	}
	return series
}

// MonthSpend is total expense spend for one calendar month.
type MonthSpend struct {
	Month  time.Month
	Year   int
	Amount decimal.Decimal
}

// TrailingMonthlySpending returns expense totals for the n calendar months
// ending at the month containing now, oldest first. n defaults to 6.
func TrailingMonthlySpending(txns []model.Transaction, now time.Time, n int) []MonthSpend {
	if n <= 0 {
		n = 6
	}

	out := make([]MonthSpend, 0, n)
	for i := n - 1; i >= 0; i-- {
		r := period.MonthsBack(now, i)
		out = append(out, MonthSpend{
			Month:  r.Start.Month(),
			Year:   r.Start.Year(),
			Amount: TotalExpenses(txns, r),
		})
	}
	return out
}

// Percentage computes part/whole as a percentage rounded to one decimal
// place. A zero whole yields zero rather than a division error.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(1)
}

// SavingsRate is the balance as a percentage of income; zero when there
// is no income.
func SavingsRate(income, expenses decimal.Decimal) decimal.Decimal {
	return Percentage(income.Sub(expenses), income)
}
