package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudgetsBudget(t *testing.T) {
	b := Budgets{
		"food":      decimal.NewFromInt(300),
		"transport": decimal.Zero,
	}

	amount, ok := b.Budget("food")
	assert.True(t, ok)
	assert.True(t, amount.Equal(decimal.NewFromInt(300)))

	// A literal zero is "no budget", not a ceiling of zero.
	_, ok = b.Budget("transport")
	assert.False(t, ok)

	_, ok = b.Budget("entertainment")
	assert.False(t, ok)

	assert.Equal(t, 1, b.Configured())
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		symbol string
		want   string
		amount float64
	}{
		{name: "small amount", symbol: "$", amount: 5.45, want: "$5.45"},
		{name: "grouping", symbol: "$", amount: 1234.56, want: "$1,234.56"},
		{name: "large grouping", symbol: "€", amount: 1234567.8, want: "€1,234,567.80"},
		{name: "zero", symbol: "$", amount: 0, want: "$0.00"},
		{name: "negative rendered unsigned", symbol: "$", amount: -100, want: "$100.00"},
		{name: "default symbol", symbol: "", amount: 1, want: "$1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCurrency(decimal.NewFromFloat(tt.amount), tt.symbol)
			assert.Equal(t, tt.want, got)
		})
	}
}
