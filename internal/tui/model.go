// Package tui implements the interactive transaction browser.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/greenledger/greenledger/internal/cli"
	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/period"
	"github.com/greenledger/greenledger/internal/pipeline"
)

// searchDebounce is how long typing must pause before the filter reruns.
const searchDebounce = 300 * time.Millisecond

// searchDebouncedMsg fires after the debounce window. The generation lets
// stale timers from earlier keystrokes be discarded.
type searchDebouncedMsg struct {
	gen int
}

var periodCycle = []period.Period{
	period.Month,
	period.Today,
	period.Week,
	period.Quarter,
	period.Year,
	period.All,
}

var typeCycle = []string{pipeline.FilterAll, "income", "expense"}

var sortCycle = []pipeline.Field{
	pipeline.FieldDate,
	pipeline.FieldAmount,
	pipeline.FieldCategory,
	pipeline.FieldType,
}

// Model holds the browser state.
type Model struct {
	keymap       KeyMap
	searchInput  textinput.Model
	table        table.Model
	transactions []model.Transaction
	categories   []model.Category
	settings     model.Settings
	state        pipeline.State
	result       pipeline.Result
	now          func() time.Time
	searchGen    int
	width        int
	height       int
	showHelp     bool
	quitting     bool
}

// NewModel creates a browser over the given collection.
func NewModel(txns []model.Transaction, cats []model.Category, set model.Settings, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}

	input := textinput.New()
	input.Placeholder = "search description or category"
	input.Prompt = "/ "
	input.CharLimit = 80

	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Description", Width: 32},
		{Title: "Category", Width: 20},
		{Title: "Amount", Width: 14},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(pipeline.DefaultPageSize),
	)

	m := Model{
		keymap:       DefaultKeyMap(),
		searchInput:  input,
		table:        tbl,
		transactions: txns,
		categories:   cats,
		settings:     set,
		state:        pipeline.DefaultState(),
		now:          now,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.searchInput.Focused() {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(4, m.height-8))
		return m, nil

	case searchDebouncedMsg:
		// A newer keystroke restarted the window; let its timer win.
		if msg.gen != m.searchGen {
			return m, nil
		}
		m.state = m.state.WithSearch(m.searchInput.Value())
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searchInput.Blur()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		m.searchGen++
		gen := m.searchGen
		debounce := tea.Tick(searchDebounce, func(time.Time) tea.Msg {
			return searchDebouncedMsg{gen: gen}
		})
		return m, tea.Batch(cmd, debounce)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Search):
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keymap.CycleType):
		m.state.Type = cycleString(typeCycle, m.state.Type)
		m.state.Page = 1
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.CycleCat):
		m.state.Category = cycleString(m.categoryCycle(), m.state.Category)
		m.state.Page = 1
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.CyclePeriod):
		m.state.Period = cyclePeriod(periodCycle, m.state.Period)
		m.state.Page = 1
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.CycleSort):
		m.state.SortField = cycleField(sortCycle, m.state.SortField)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.FlipSort):
		if m.state.SortDir == pipeline.Asc {
			m.state.SortDir = pipeline.Desc
		} else {
			m.state.SortDir = pipeline.Asc
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.PrevPage):
		m.state = m.state.WithPage(m.state.Page - 1)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keymap.NextPage):
		m.state = m.state.WithPage(m.state.Page + 1)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// refresh reruns the pipeline and rebuilds the visible rows.
func (m *Model) refresh() {
	m.result = pipeline.Apply(m.transactions, m.categories, m.state, m.now())
	m.state.Page = m.result.PageIndex

	rows := make([]table.Row, 0, len(m.result.Page))
	for _, tx := range m.result.Page {
		rows = append(rows, table.Row{
			cli.FormatDate(tx.Date),
			tx.Description,
			model.CategoryIcon(m.categories, tx.Category) + " " + model.CategoryName(m.categories, tx.Category),
			cli.SignedAmount(tx.Type, tx.Amount, m.settings.Currency),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := cli.TitleStyle.Render("Transactions")
	filters := cli.SubtleStyle.Render(fmt.Sprintf(
		"period:%s  type:%s  category:%s  sort:%s %s",
		m.state.Period, m.state.Type, m.state.Category, m.state.SortField, m.state.SortDir,
	))

	summary := fmt.Sprintf(
		"%d transactions  income %s  expenses %s  balance %s  page %d/%d",
		m.result.Total,
		model.FormatCurrency(m.result.Income, m.settings.Currency),
		model.FormatCurrency(m.result.Expenses, m.settings.Currency),
		model.FormatCurrency(m.result.Balance, m.settings.Currency),
		m.result.PageIndex, m.result.PageCount,
	)

	sections := []string{title, m.searchInput.View(), filters, m.table.View(), cli.SubtleStyle.Render(summary)}
	if m.showHelp {
		sections = append(sections, renderHelp(m.keymap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// State exposes the current pipeline selection, mainly for tests.
func (m Model) State() pipeline.State { return m.state }

// Result exposes the last pipeline result, mainly for tests.
func (m Model) Result() pipeline.Result { return m.result }

func (m Model) categoryCycle() []string {
	cycle := []string{pipeline.FilterAll}
	for _, cat := range m.categories {
		cycle = append(cycle, cat.ID)
	}
	return cycle
}

func renderHelp(k KeyMap) string {
	var out string
	for _, row := range k.FullHelp() {
		line := ""
		for _, binding := range row {
			line += fmt.Sprintf("%s %s   ", binding.Help().Key, binding.Help().Desc)
		}
		out += cli.SubtleStyle.Render(line) + "\n"
	}
	return out
}

func cycleString(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func cyclePeriod(cycle []period.Period, current period.Period) period.Period {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func cycleField(cycle []pipeline.Field, current pipeline.Field) pipeline.Field {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
