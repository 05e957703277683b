// Package pipeline turns the full transaction collection into the
// filtered, sorted, paginated view the list surfaces display. State is an
// explicit immutable value passed into each call; there is no shared
// page-state singleton.
package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/greenledger/greenledger/internal/model"
	"github.com/greenledger/greenledger/internal/period"
)

// Field names a sortable transaction attribute.
type Field string

// Sortable fields.
const (
	FieldDate     Field = "date"
	FieldAmount   Field = "amount"
	FieldCategory Field = "category"
	FieldType     Field = "type"
)

// Direction orders a sort ascending or descending.
type Direction string

// Sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filter wildcard accepted by the type and category filters.
const FilterAll = "all"

// DefaultPageSize matches the transaction table of the original dashboard.
const DefaultPageSize = 20

// State is one complete filter/sort/page selection. The zero value is not
// useful; start from DefaultState.
type State struct {
	Search    string
	Type      string // all | income | expense
	Category  string // all | category id
	Period    period.Period
	SortField Field
	SortDir   Direction
	Page      int
	PageSize  int
}

// DefaultState returns the initial list view: current month, newest first.
func DefaultState() State {
	return State{
		Type:      FilterAll,
		Category:  FilterAll,
		Period:    period.Month,
		SortField: FieldDate,
		SortDir:   Desc,
		Page:      1,
		PageSize:  DefaultPageSize,
	}
}

// WithSearch returns a copy with the search text changed and the page reset.
func (s State) WithSearch(q string) State {
	s.Search = q
	s.Page = 1
	return s
}

// WithPage returns a copy on the given page.
func (s State) WithPage(page int) State {
	s.Page = page
	return s
}

// Result is the outcome of one pipeline application. All carries the full
// filtered-and-sorted sequence; Page is the slice currently displayed.
// The summary figures cover the filtered set, never just the visible page.
type Result struct {
	All       []model.Transaction
	Page      []model.Transaction
	PageIndex int
	PageCount int
	Total     int
	Income    decimal.Decimal
	Expenses  decimal.Decimal
	Balance   decimal.Decimal
}

// Apply filters, sorts, and paginates txns under st. Filters compose with
// logical AND; sorting is stable; out-of-range pages clamp silently.
// Applying the same state to Result.All reproduces the result.
func Apply(txns []model.Transaction, cats []model.Category, st State, now time.Time) Result {
	filtered := filter(txns, cats, st, now)
	sortTransactions(filtered, cats, st.SortField, st.SortDir)

	res := Result{
		All:      filtered,
		Total:    len(filtered),
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
	for _, tx := range filtered {
		switch tx.Type {
		case model.TypeIncome:
			res.Income = res.Income.Add(tx.Amount)
		case model.TypeExpense:
			res.Expenses = res.Expenses.Add(tx.Amount)
		}
	}
	res.Balance = res.Income.Sub(res.Expenses)

	res.PageIndex, res.PageCount, res.Page = paginate(filtered, st.Page, st.PageSize)
	return res
}

func filter(txns []model.Transaction, cats []model.Category, st State, now time.Time) []model.Transaction {
	search := strings.ToLower(strings.TrimSpace(st.Search))

	var dateRange period.Range
	filterByPeriod := st.Period != "" && st.Period != period.All
	if filterByPeriod {
		dateRange = period.Resolve(st.Period, now)
	}

	out := make([]model.Transaction, 0, len(txns))
	for _, tx := range txns {
		if search != "" {
			description := strings.ToLower(tx.Description)
			categoryName := strings.ToLower(model.CategoryName(cats, tx.Category))
			if !strings.Contains(description, search) && !strings.Contains(categoryName, search) {
				continue
			}
		}
		if st.Type != "" && st.Type != FilterAll && string(tx.Type) != st.Type {
			continue
		}
		if st.Category != "" && st.Category != FilterAll && tx.Category != st.Category {
			continue
		}
		if filterByPeriod && !dateRange.Contains(tx.Date) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// sortTransactions orders txns in place. Stability is load-bearing: equal
// keys must keep their original relative order.
func sortTransactions(txns []model.Transaction, cats []model.Category, field Field, dir Direction) {
	less := lessFunc(txns, cats, field)
	if less == nil {
		return
	}
	if dir == Desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(txns, less)
}

func lessFunc(txns []model.Transaction, cats []model.Category, field Field) func(i, j int) bool {
	switch field {
	case FieldDate:
		return func(i, j int) bool { return txns[i].Date.Before(txns[j].Date.Time) }
	case FieldAmount:
		return func(i, j int) bool { return txns[i].Amount.LessThan(txns[j].Amount) }
	case FieldCategory:
		return func(i, j int) bool {
			return model.CategoryName(cats, txns[i].Category) < model.CategoryName(cats, txns[j].Category)
		}
	case FieldType:
		return func(i, j int) bool { return txns[i].Type < txns[j].Type }
	default:
		return nil
	}
}

// paginate slices the 1-indexed page of the given size, clamping
// out-of-range page numbers instead of erroring.
func paginate(txns []model.Transaction, page, size int) (pageIndex, pageCount int, slice []model.Transaction) {
	if size <= 0 {
		size = DefaultPageSize
	}

	pageCount = (len(txns) + size - 1) / size
	if pageCount == 0 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * size
	end := start + size
	if start > len(txns) {
		start = len(txns)
	}
	if end > len(txns) {
		end = len(txns)
	}
	return page, pageCount, txns[start:end]
}
