// Package period resolves named calendar periods to concrete date ranges.
package period

import (
	"log/slog"
	"time"

	"github.com/greenledger/greenledger/internal/model"
)

// Period names a resolvable calendar interval.
type Period string

// Known periods.
const (
	Today   Period = "today"
	Week    Period = "week"
	Month   Period = "month"
	Quarter Period = "quarter"
	Year    Period = "year"
	// All disables period filtering; it resolves to an open range that
	// contains every representable date.
	All Period = "all"
)

// Default is the fallback period for unrecognized values.
const Default = Month

// Known reports whether p is a bounded calendar period keyword.
func Known(p Period) bool {
	switch p {
	case Today, Week, Month, Quarter, Year:
		return true
	default:
		return false
	}
}

// Range is an inclusive interval of calendar dates.
type Range struct {
	Start model.Date
	End   model.Date
}

// Contains reports whether d falls within the range, bounds included.
func (r Range) Contains(d model.Date) bool {
	return !d.Before(r.Start.Time) && !d.After(r.End.Time)
}

// Resolve maps a period keyword to the concrete date interval containing
// now. Unrecognized periods fall back to the current month; the rejected
// value is logged rather than silently substituted so typos stay visible.
func Resolve(p Period, now time.Time) Range {
	today := model.DateOf(now)

	switch p {
	case Today:
		return Range{Start: today, End: today}
	case Week:
		// Weeks run Sunday through Saturday.
		start := today.AddDays(-int(now.Weekday()))
		return Range{Start: start, End: start.AddDays(6)}
	case Month:
		return MonthRange(now.Year(), now.Month())
	case Quarter:
		q := (int(now.Month()) - 1) / 3
		start := model.NewDate(now.Year(), time.Month(q*3+1), 1)
		return Range{Start: start, End: model.DateOf(start.AddDate(0, 3, -1))}
	case Year:
		return Range{
			Start: model.NewDate(now.Year(), time.January, 1),
			End:   model.NewDate(now.Year(), time.December, 31),
		}
	case All:
		return Range{
			Start: model.NewDate(1, time.January, 1),
			End:   model.NewDate(9999, time.December, 31),
		}
	default:
		slog.Warn("unrecognized period, using default", "period", p, "default", Default)
		return Resolve(Default, now)
	}
}

// MonthRange returns the full calendar month for the given year and month.
func MonthRange(year int, month time.Month) Range {
	start := model.NewDate(year, month, 1)
	return Range{Start: start, End: model.DateOf(start.AddDate(0, 1, -1))}
}

// MonthsBack returns the calendar month i months before the month
// containing now; i=0 is the current month.
func MonthsBack(now time.Time, i int) Range {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -i, 0)
	return MonthRange(anchor.Year(), anchor.Month())
}
