package storage

import (
	"github.com/shopspring/decimal"

	"github.com/greenledger/greenledger/internal/model"
)

// DefaultCategories returns the seeded category list. Category ids double
// as budget keys, so they stay short and stable.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "salary", Name: "Salary", Type: model.CategoryIncome, Icon: "💰", Color: "#10b981"},
		{ID: "freelance", Name: "Freelance", Type: model.CategoryIncome, Icon: "💻", Color: "#06b6d4"},
		{ID: "investment", Name: "Investment", Type: model.CategoryIncome, Icon: "📈", Color: "#8b5cf6"},

		{ID: "food", Name: "Food & Dining", Type: model.CategoryExpense, Icon: "🍕", Color: "#ef4444"},
		{ID: "transport", Name: "Transportation", Type: model.CategoryExpense, Icon: "🚗", Color: "#f97316"},
		{ID: "entertainment", Name: "Entertainment", Type: model.CategoryExpense, Icon: "🎬", Color: "#ec4899"},
		{ID: "shopping", Name: "Shopping", Type: model.CategoryExpense, Icon: "🛒", Color: "#a855f7"},
		{ID: "utilities", Name: "Bills & Utilities", Type: model.CategoryExpense, Icon: "💡", Color: "#eab308"},
		{ID: "healthcare", Name: "Healthcare", Type: model.CategoryExpense, Icon: "🏥", Color: "#22c55e"},
		{ID: "education", Name: "Education", Type: model.CategoryExpense, Icon: "📚", Color: "#3b82f6"},
	}
}

// DefaultSettings returns the initial settings, including starter budgets
// for the common expense categories.
func DefaultSettings() model.Settings {
	return model.Settings{
		Currency:        "$",
		Theme:           "light",
		DashboardPeriod: "month",
		Budgets: model.Budgets{
			"food":          decimal.NewFromInt(500),
			"transport":     decimal.NewFromInt(300),
			"entertainment": decimal.NewFromInt(200),
			"shopping":      decimal.NewFromInt(400),
			"utilities":     decimal.NewFromInt(250),
			"healthcare":    decimal.NewFromInt(150),
			"education":     decimal.NewFromInt(100),
		},
	}
}
