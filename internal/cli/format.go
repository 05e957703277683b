package cli

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/greenledger/greenledger/internal/model"
)

// FormatDate renders a date in medium form, e.g. "Sep 18, 2024".
func FormatDate(d model.Date) string {
	return d.Format("Jan 2, 2006")
}

// RelativeDate renders today and yesterday as words, everything else
// through FormatDate.
func RelativeDate(d model.Date, now time.Time) string {
	today := model.DateOf(now)
	switch {
	case d.Equal(today.Time):
		return "Today"
	case d.Equal(today.AddDays(-1).Time):
		return "Yesterday"
	default:
		return FormatDate(d)
	}
}

// SignedAmount renders an amount with its flow direction: income green
// with a plus sign, expenses red with a minus sign.
func SignedAmount(t model.TransactionType, amount decimal.Decimal, currency string) string {
	formatted := model.FormatCurrency(amount, currency)
	if t == model.TypeIncome {
		return IncomeStyle.Render("+" + formatted)
	}
	return ExpenseStyle.Render("-" + formatted)
}

// RenderTable renders rows under a styled header. Column widths come from
// the widest cell per column.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(TableHeaderStyle.Width(widths[i] + 2).Render(h))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			pad := widths[i] + 2 - lipgloss.Width(cell)
			b.WriteString(TableCellStyle.Render(cell))
			if pad > 2 {
				b.WriteString(strings.Repeat(" ", pad-2))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
