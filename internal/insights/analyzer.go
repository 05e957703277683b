// Package insights derives qualitative observations from aggregated
// figures: cash flow, savings rate, category concentration, and budget
// performance.
package insights

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenledger/greenledger/internal/analytics"
	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/period"
)

// concentrationThreshold is the share of total expenses above which a
// single category draws a warning.
var concentrationThreshold = decimal.NewFromInt(40)

var savingsExcellent = decimal.NewFromInt(20)
var savingsGood = decimal.NewFromInt(10)

// Analyze evaluates the insight rules in fixed order (cash flow, savings
// rate, concentration, budgets) and returns zero or one insight per rule.
// Budget analysis is always month-to-date regardless of p.
func Analyze(txns []model.Transaction, cats []model.Category, set model.Settings, p period.Period, now time.Time) []model.Insight {
	if !period.Known(p) && p != period.All {
		p = period.Default
	}
	r := period.Resolve(p, now)
	income := analytics.TotalIncome(txns, r)
	expenses := analytics.TotalExpenses(txns, r)
	balance := income.Sub(expenses)
	currency := set.Currency

	var out []model.Insight

	if cashFlow, ok := cashFlowInsight(balance, p, currency); ok {
		out = append(out, cashFlow)
	}
	if savings, ok := savingsRateInsight(income, balance); ok {
		out = append(out, savings)
	}
	if concentration, ok := concentrationInsight(txns, cats, r, expenses); ok {
		out = append(out, concentration)
	}
	if budget, ok := budgetInsight(txns, cats, set, now); ok {
		out = append(out, budget)
	}
	return out
}

func cashFlowInsight(balance decimal.Decimal, p period.Period, currency string) (model.Insight, bool) {
	switch {
	case balance.IsPositive():
		return model.Insight{
			Kind:  model.InsightPositive,
			Title: "Positive Cash Flow",
			Message: fmt.Sprintf("You saved %s %s. Great job maintaining a positive balance!",
				model.FormatCurrency(balance, currency), periodLabel(p)),
			Icon: "💚",
		}, true
	case balance.IsNegative():
		return model.Insight{
			Kind:  model.InsightWarning,
			Title: "Negative Cash Flow",
			Message: fmt.Sprintf("You spent %s more than you earned %s. Consider reviewing your expenses.",
				model.FormatCurrency(balance.Abs(), currency), periodLabel(p)),
			Icon: "⚠️",
		}, true
	default:
		return model.Insight{}, false
	}
}

// periodLabel phrases a period for use mid-sentence.
func periodLabel(p period.Period) string {
	switch p {
	case period.All:
		return "overall"
	case period.Today:
		return "today"
	default:
		return "this " + string(p)
	}
}

func savingsRateInsight(income, balance decimal.Decimal) (model.Insight, bool) {
	if !income.IsPositive() {
		return model.Insight{}, false
	}
	rate := analytics.Percentage(balance, income)

	switch {
	case rate.GreaterThanOrEqual(savingsExcellent):
		return model.Insight{
			Kind:  model.InsightPositive,
			Title: "Excellent Savings Rate",
			Message: fmt.Sprintf("Your savings rate of %s%% is excellent! Keep up the good financial habits.",
				rate.StringFixed(1)),
			Icon: "🎯",
		}, true
	case rate.GreaterThanOrEqual(savingsGood):
		return model.Insight{
			Kind:  model.InsightNeutral,
			Title: "Good Savings Rate",
			Message: fmt.Sprintf("Your savings rate of %s%% is good. Consider increasing it to 20%% for optimal financial health.",
				rate.StringFixed(1)),
			Icon: "📈",
		}, true
	default:
		return model.Insight{
			Kind:  model.InsightWarning,
			Title: "Low Savings Rate",
			Message: fmt.Sprintf("Your savings rate of %s%% could be improved. Try to save at least 10%% of your income.",
				rate.StringFixed(1)),
			Icon: "📊",
		}, true
	}
}

func concentrationInsight(txns []model.Transaction, cats []model.Category, r period.Range, expenses decimal.Decimal) (model.Insight, bool) {
	if !expenses.IsPositive() {
		return model.Insight{}, false
	}

	byCategory := analytics.ExpensesByCategory(txns, cats, r)
	top, ok := analytics.TopSpendingCategory(byCategory, cats)
	if !ok {
		return model.Insight{}, false
	}

	// The threshold check uses the raw share; rounding happens only in
	// the message, so a 40.01% share still warns.
	share := top.Amount.Div(expenses).Mul(decimal.NewFromInt(100))
	if !share.GreaterThan(concentrationThreshold) {
		return model.Insight{}, false
	}

	return model.Insight{
		Kind:  model.InsightWarning,
		Title: "High Category Spending",
		Message: fmt.Sprintf("%s accounts for %s%% of your spending. Consider if this allocation aligns with your goals.",
			top.Name, share.StringFixed(1)),
		Icon: "🏷️",
	}, true
}

func budgetInsight(txns []model.Transaction, cats []model.Category, set model.Settings, now time.Time) (model.Insight, bool) {
	month := period.Resolve(period.Month, now)
	byCategory := analytics.ExpensesByCategory(txns, cats, month)

	configured := 0
	overBudget := 0
	totalOverage := decimal.Zero

	for _, cat := range model.CategoriesByType(cats, model.CategoryExpense) {
		budget, ok := set.Budgets.Budget(cat.ID)
		if !ok {
			continue
		}
		configured++
		spent := byCategory[cat.ID]
		if spent.GreaterThan(budget) {
			overBudget++
			totalOverage = totalOverage.Add(spent.Sub(budget))
		}
	}

	switch {
	case overBudget > 0:
		return model.Insight{
			Kind:  model.InsightWarning,
			Title: "Budget Overruns",
			Message: fmt.Sprintf("You're over budget in %d categories, exceeding by %s total.",
				overBudget, model.FormatCurrency(totalOverage, set.Currency)),
			Icon: "📋",
		}, true
	case configured > 0:
		return model.Insight{
			Kind:    model.InsightPositive,
			Title:   "Budget On Track",
			Message: "You're staying within your budgets across all categories. Excellent discipline!",
			Icon:    "✅",
		}, true
	default:
		return model.Insight{}, false
	}
}

// BudgetRow is one category's month-to-date budget performance.
type BudgetRow struct {
	Category model.Category
	Budget   decimal.Decimal
	Spent    decimal.Decimal
	// Percent is spend against budget, capped at 100 for display bars.
	Percent decimal.Decimal
	Overage decimal.Decimal
	Over    bool
}

// BudgetPerformance reports month-to-date spend against every configured
// budget, in category-list order. Categories without budgets are omitted.
func BudgetPerformance(txns []model.Transaction, cats []model.Category, set model.Settings, now time.Time) []BudgetRow {
	month := period.Resolve(period.Month, now)
	byCategory := analytics.ExpensesByCategory(txns, cats, month)

	var rows []BudgetRow
	for _, cat := range model.CategoriesByType(cats, model.CategoryExpense) {
		budget, ok := set.Budgets.Budget(cat.ID)
		if !ok {
			continue
		}
		spent := byCategory[cat.ID]

		row := BudgetRow{
			Category: cat,
			Budget:   budget,
			Spent:    spent,
			Percent:  analytics.Percentage(spent, budget),
			Over:     spent.GreaterThan(budget),
		}
		if row.Percent.GreaterThan(decimal.NewFromInt(100)) {
			row.Percent = decimal.NewFromInt(100)
		}
		if row.Over {
			row.Overage = spent.Sub(budget)
		}
		rows = append(rows, row)
	}
	return rows
}
