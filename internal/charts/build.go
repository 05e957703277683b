package charts

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenledger/greenledger/internal/analytics"
	"github.com/greenledger/greenledger/internal/model"
)

const (
	incomeColor  = "#10b981"
	expenseColor = "#ef4444"
	trendColor   = "#00FF7F"
)

// ExpenseBreakdown builds the doughnut of period spending per category.
// Zero-spend categories are dropped and slices are ordered largest first.
func ExpenseBreakdown(byCategory map[string]decimal.Decimal, cats []model.Category) Spec {
	type slice struct {
		cat    model.Category
		amount decimal.Decimal
	}

	var slices []slice
	for _, cat := range model.CategoriesByType(cats, model.CategoryExpense) {
		amount, ok := byCategory[cat.ID]
		if !ok || !amount.IsPositive() {
			continue
		}
		slices = append(slices, slice{cat: cat, amount: amount})
	}
	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].amount.GreaterThan(slices[j].amount)
	})

	spec := Spec{Kind: KindDoughnut, Title: "Expense Breakdown"}
	values := make([]decimal.Decimal, 0, len(slices))
	for _, s := range slices {
		spec.Labels = append(spec.Labels, s.cat.Name)
		color := s.cat.Color
		if color == "" {
			color = model.FallbackColor
		}
		spec.Colors = append(spec.Colors, color)
		values = append(values, s.amount)
	}
	spec.Series = []Series{{Name: "Expenses", Values: values}}
	return spec
}

// IncomeExpenseSeries builds the twelve-month income versus expenses line
// chart for one calendar year.
func IncomeExpenseSeries(series [12]analytics.MonthTotals, year int) Spec {
	spec := Spec{
		Kind:  KindLine,
		Title: fmt.Sprintf("Income vs Expenses %d", year),
	}

	income := make([]decimal.Decimal, 12)
	expenses := make([]decimal.Decimal, 12)
	for i, totals := range series {
		spec.Labels = append(spec.Labels, time.Month(i+1).String()[:3])
		income[i] = totals.Income
		expenses[i] = totals.Expenses
	}

	spec.Series = []Series{
		{Name: "Income", Color: incomeColor, Values: income},
		{Name: "Expenses", Color: expenseColor, Values: expenses},
	}
	return spec
}

// SpendingTrend builds the trailing-months spending bar chart, oldest
// month first.
func SpendingTrend(spend []analytics.MonthSpend) Spec {
	spec := Spec{Kind: KindBar, Title: "Spending Trend"}

	values := make([]decimal.Decimal, 0, len(spend))
	for _, m := range spend {
		spec.Labels = append(spec.Labels, fmt.Sprintf("%s %d", m.Month.String()[:3], m.Year))
		values = append(values, m.Amount)
	}
	spec.Series = []Series{{Name: "Spending", Color: trendColor, Values: values}}
	return spec
}
