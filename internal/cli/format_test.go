package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/greenledger/greenledger/internal/model"
)

func TestFormatDate(t *testing.T) {
	d := model.NewDate(2024, time.September, 18)
	assert.Equal(t, "Sep 18, 2024", FormatDate(d))
}

func TestRelativeDate(t *testing.T) {
	now := time.Date(2024, time.September, 18, 15, 30, 0, 0, time.Local)

	assert.Equal(t, "Today", RelativeDate(model.NewDate(2024, time.September, 18), now))
	assert.Equal(t, "Yesterday", RelativeDate(model.NewDate(2024, time.September, 17), now))
	assert.Equal(t, "Sep 10, 2024", RelativeDate(model.NewDate(2024, time.September, 10), now))
}

func TestSignedAmount(t *testing.T) {
	income := SignedAmount(model.TypeIncome, decimal.NewFromInt(100), "$")
	expense := SignedAmount(model.TypeExpense, decimal.NewFromFloat(45.20), "$")

	assert.Contains(t, income, "+$100.00")
	assert.Contains(t, expense, "-$45.20")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Date", "Amount"},
		[][]string{
			{"Sep 18, 2024", "$5.45"},
			{"Sep 15, 2024", "$85.50"},
		},
	)

	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "Amount")
	assert.Contains(t, out, "$85.50")
}
