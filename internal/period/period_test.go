package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/greenledger/greenledger/internal/model"
)

func TestResolve(t *testing.T) {
	// Wednesday, September 18 2024.
	now := time.Date(2024, time.September, 18, 14, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		period    Period
		wantStart string
		wantEnd   string
	}{
		{name: "today", period: Today, wantStart: "2024-09-18", wantEnd: "2024-09-18"},
		{name: "week starts on sunday", period: Week, wantStart: "2024-09-15", wantEnd: "2024-09-21"},
		{name: "month", period: Month, wantStart: "2024-09-01", wantEnd: "2024-09-30"},
		{name: "quarter", period: Quarter, wantStart: "2024-07-01", wantEnd: "2024-09-30"},
		{name: "year", period: Year, wantStart: "2024-01-01", wantEnd: "2024-12-31"},
		{name: "unknown falls back to month", period: "fortnite", wantStart: "2024-09-01", wantEnd: "2024-09-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolve(tt.period, now)
			assert.Equal(t, tt.wantStart, r.Start.String())
			assert.Equal(t, tt.wantEnd, r.End.String())
		})
	}
}

func TestResolveAllContainsEverything(t *testing.T) {
	now := time.Date(2024, time.September, 18, 0, 0, 0, 0, time.Local)
	r := Resolve(All, now)

	assert.True(t, r.Contains(model.NewDate(1970, time.January, 1)))
	assert.True(t, r.Contains(model.NewDate(2024, time.September, 18)))
	assert.True(t, r.Contains(model.NewDate(2999, time.December, 31)))
}

func TestResolveWeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.September, 15, 8, 0, 0, 0, time.Local)
	r := Resolve(Week, sunday)
	assert.Equal(t, "2024-09-15", r.Start.String())
	assert.Equal(t, "2024-09-21", r.End.String())
}

func TestResolveQuarterBlocks(t *testing.T) {
	tests := []struct {
		month     time.Month
		wantStart string
		wantEnd   string
	}{
		{time.February, "2024-01-01", "2024-03-31"},
		{time.April, "2024-04-01", "2024-06-30"},
		{time.September, "2024-07-01", "2024-09-30"},
		{time.December, "2024-10-01", "2024-12-31"},
	}

	for _, tt := range tests {
		now := time.Date(2024, tt.month, 10, 0, 0, 0, 0, time.Local)
		r := Resolve(Quarter, now)
		assert.Equal(t, tt.wantStart, r.Start.String(), "month %s", tt.month)
		assert.Equal(t, tt.wantEnd, r.End.String(), "month %s", tt.month)
	}
}

func TestRangeContainsInclusiveBounds(t *testing.T) {
	r := MonthRange(2024, time.September)

	assert.True(t, r.Contains(model.NewDate(2024, time.September, 1)))
	assert.True(t, r.Contains(model.NewDate(2024, time.September, 30)))
	assert.True(t, r.Contains(model.NewDate(2024, time.September, 15)))
	assert.False(t, r.Contains(model.NewDate(2024, time.August, 31)))
	assert.False(t, r.Contains(model.NewDate(2024, time.October, 1)))
}

func TestMonthsBack(t *testing.T) {
	now := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.Local)

	r := MonthsBack(now, 0)
	assert.Equal(t, "2025-02-01", r.Start.String())
	assert.Equal(t, "2025-02-28", r.End.String())

	// Crosses the year boundary.
	r = MonthsBack(now, 3)
	assert.Equal(t, "2024-11-01", r.Start.String())
	assert.Equal(t, "2024-11-30", r.End.String())
}

func TestKnown(t *testing.T) {
	for _, p := range []Period{Today, Week, Month, Quarter, Year} {
		assert.True(t, Known(p))
	}
	assert.False(t, Known(All))
	assert.False(t, Known("fortnite"))
}
