package charts

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenledger/greenledger/internal/analytics"
	"github.com/greenledger/greenledger/internal/model"
)

type fakeRenderer struct {
	slot      string
	rendered  []Spec
	released  bool
	renderErr error
}

func TestRegistryReleasesPriorInstance(t *testing.T) {
	var created []*fakeRenderer
	reg := NewRegistry(func(slot string) (Renderer, error) {
		r := &fakeRenderer{slot: slot}
		created = append(created, r)
		return r, nil
	})

	spec := Spec{Kind: KindBar, Title: "Spending Trend"}
	require.NoError(t, reg.Render("trend", spec))
	require.NoError(t, reg.Render("trend", spec))

	require.Len(t, created, 2)
	assert.True(t, created[0].released, "first renderer must be released before re-render")
	assert.False(t, created[1].released)
	assert.Len(t, created[1].rendered, 1)
}

func TestRegistrySlotsAreIndependent(t *testing.T) {
	var created []*fakeRenderer
	reg := NewRegistry(func(slot string) (Renderer, error) {
		r := &fakeRenderer{slot: slot}
		created = append(created, r)
		return r, nil
	})

	require.NoError(t, reg.Render("breakdown", Spec{Kind: KindDoughnut}))
	require.NoError(t, reg.Render("trend", Spec{Kind: KindBar}))

	require.Len(t, created, 2)
	assert.False(t, created[0].released)
	assert.False(t, created[1].released)

	require.NoError(t, reg.Close())
	assert.True(t, created[0].released)
	assert.True(t, created[1].released)
}

func TestRegistryRenderFailureDoesNotOccupySlot(t *testing.T) {
	calls := 0
	reg := NewRegistry(func(slot string) (Renderer, error) {
		calls++
		if calls == 1 {
			return &fakeRenderer{renderErr: errors.New("no tty")}, nil
		}
		return &fakeRenderer{}, nil
	})

	require.Error(t, reg.Render("trend", Spec{}))
	require.NoError(t, reg.Render("trend", Spec{}))
}

func TestExpenseBreakdownDropsZeroSpendAndSortsDescending(t *testing.T) {
	cats := []model.Category{
		{ID: "salary", Name: "Salary", Type: model.CategoryIncome},
		{ID: "food", Name: "Food & Dining", Type: model.CategoryExpense, Color: "#f59e0b"},
		{ID: "transport", Name: "Transportation", Type: model.CategoryExpense, Color: "#3b82f6"},
		{ID: "utilities", Name: "Utilities", Type: model.CategoryExpense, Color: "#eab308"},
		{ID: "misc", Name: "Misc", Type: model.CategoryExpense},
	}
	byCategory := map[string]decimal.Decimal{
		"food":      decimal.NewFromInt(100),
		"transport": decimal.NewFromInt(250),
		"utilities": decimal.Zero,
		"misc":      decimal.NewFromInt(10),
	}

	spec := ExpenseBreakdown(byCategory, cats)

	assert.Equal(t, KindDoughnut, spec.Kind)
	assert.Equal(t, []string{"Transportation", "Food & Dining", "Misc"}, spec.Labels)
	// Missing category color falls back rather than rendering uncolored.
	assert.Equal(t, []string{"#3b82f6", "#f59e0b", model.FallbackColor}, spec.Colors)

	require.Len(t, spec.Series, 1)
	values := spec.Series[0].Values
	require.Len(t, values, 3)
	assert.True(t, values[0].Equal(decimal.NewFromInt(250)))
	assert.True(t, values[2].Equal(decimal.NewFromInt(10)))
}

func TestIncomeExpenseSeries(t *testing.T) {
	var series [12]analytics.MonthTotals
	series[0] = analytics.MonthTotals{Income: decimal.NewFromInt(1000), Expenses: decimal.NewFromInt(400)}

	spec := IncomeExpenseSeries(series, 2024)

	assert.Equal(t, KindLine, spec.Kind)
	assert.Equal(t, "Income vs Expenses 2024", spec.Title)
	require.Len(t, spec.Labels, 12)
	assert.Equal(t, "Jan", spec.Labels[0])
	assert.Equal(t, "Dec", spec.Labels[11])

	require.Len(t, spec.Series, 2)
	assert.Equal(t, "Income", spec.Series[0].Name)
	assert.Equal(t, "#10b981", spec.Series[0].Color)
	assert.Equal(t, "Expenses", spec.Series[1].Name)
	assert.Equal(t, "#ef4444", spec.Series[1].Color)
	assert.True(t, spec.Series[0].Values[0].Equal(decimal.NewFromInt(1000)))
	assert.True(t, spec.Series[1].Values[0].Equal(decimal.NewFromInt(400)))
}

func TestSpendingTrendLabels(t *testing.T) {
	spend := []analytics.MonthSpend{
		{Year: 2024, Month: time.November, Amount: decimal.NewFromInt(60)},
		{Year: 2024, Month: time.December, Amount: decimal.Zero},
		{Year: 2025, Month: time.January, Amount: decimal.NewFromInt(80)},
	}

	spec := SpendingTrend(spend)

	assert.Equal(t, KindBar, spec.Kind)
	assert.Equal(t, []string{"Nov 2024", "Dec 2024", "Jan 2025"}, spec.Labels)
	require.Len(t, spec.Series, 1)
	assert.Len(t, spec.Series[0].Values, 3)
}

func TestTermRendererWritesBars(t *testing.T) {
	var buf bytes.Buffer
	r := NewTermRenderer(&buf, "$")

	spec := Spec{
		Kind:   KindBar,
		Title:  "Spending Trend",
		Labels: []string{"Nov 2024", "Dec 2024"},
		Series: []Series{{Name: "Spending", Values: []decimal.Decimal{
			decimal.NewFromInt(60),
			decimal.NewFromInt(30),
		}}},
	}

	require.NoError(t, r.Render(spec))
	out := buf.String()
	assert.Contains(t, out, "Spending Trend")
	assert.Contains(t, out, "Nov 2024")
	assert.Contains(t, out, "$60.00")
	assert.Contains(t, out, "$30.00")
	assert.NoError(t, r.Release())
}

func (f *fakeRenderer) Render(spec Spec) error {
	if f.renderErr != nil {
		return f.renderErr
	}
	f.rendered = append(f.rendered, spec)
	return nil
}

func (f *fakeRenderer) Release() error {
	f.released = true
	return nil
}
