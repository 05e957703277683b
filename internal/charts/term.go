package charts

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const barWidth = 30

var termTitleStyle = lipgloss.NewStyle().Bold(true)

// TermRenderer draws charts as proportional horizontal bars on a terminal.
// It satisfies Renderer; Release is a no-op since nothing is held between
// renders beyond the output writer.
type TermRenderer struct {
	w        io.Writer
	currency string
}

// NewTermRenderer returns a terminal renderer writing to w, formatting
// values with the given currency symbol.
func NewTermRenderer(w io.Writer, currency string) *TermRenderer {
	return &TermRenderer{w: w, currency: currency}
}

// Render writes the chart. All kinds degrade to labeled bars; line charts
// emit one bar block per series.
func (t *TermRenderer) Render(spec Spec) error {
	if _, err := fmt.Fprintln(t.w, termTitleStyle.Render(spec.Title)); err != nil {
		return err
	}

	switch spec.Kind {
	case KindLine:
		for _, s := range spec.Series {
			if _, err := fmt.Fprintln(t.w, s.Name); err != nil {
				return err
			}
			if err := t.renderBars(spec.Labels, s.Values, uniformColors(s.Color, len(s.Values))); err != nil {
				return err
			}
		}
		return nil
	default:
		if len(spec.Series) == 0 {
			return nil
		}
		s := spec.Series[0]
		colors := spec.Colors
		if len(colors) == 0 {
			colors = uniformColors(s.Color, len(s.Values))
		}
		return t.renderBars(spec.Labels, s.Values, colors)
	}
}

// Release implements Renderer.
func (t *TermRenderer) Release() error { return nil }

func (t *TermRenderer) renderBars(labels []string, values []decimal.Decimal, colors []string) error {
	max := decimal.Zero
	labelWidth := 0
	for i, v := range values {
		if v.GreaterThan(max) {
			max = v
		}
		if i < len(labels) && len(labels[i]) > labelWidth {
			labelWidth = len(labels[i])
		}
	}

	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		n := 0
		if max.IsPositive() && v.IsPositive() {
			n = int(v.Div(max).Mul(decimal.NewFromInt(barWidth)).IntPart())
			if n == 0 {
				n = 1
			}
		}
		bar := strings.Repeat("█", n)
		if i < len(colors) && colors[i] != "" {
			bar = lipgloss.NewStyle().Foreground(lipgloss.Color(colors[i])).Render(bar)
		}

		_, err := fmt.Fprintf(t.w, "  %-*s %s %s%s\n", labelWidth, label, bar, t.currency, v.StringFixed(2))
		if err != nil {
			return err
		}
	}
	return nil
}

func uniformColors(color string, n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = color
	}
	return colors
}
