package model

// CategoryType indicates whether a category classifies income or expenses.
type CategoryType string

const (
	// CategoryIncome represents categories for income transactions.
	CategoryIncome CategoryType = "income"
	// CategoryExpense represents categories for expense transactions.
	CategoryExpense CategoryType = "expense"
)

// Matches reports whether a transaction of type t may use this category.
func (c CategoryType) Matches(t TransactionType) bool {
	return string(c) == string(t)
}

// Category is read-mostly reference data classifying transactions.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Icon  string       `json:"icon"`
	Color string       `json:"color"`
}

// Display fallbacks, used only when a transaction references a category id
// that is absent from the authoritative list.
const (
	FallbackIcon  = "📋"
	FallbackColor = "#6b7280"
)

// FindCategory looks up a category by id.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoriesByType returns the categories of the given type, preserving order.
func CategoriesByType(categories []Category, t CategoryType) []Category {
	var out []Category
	for _, c := range categories {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// CategoryName resolves a category id to its display name, or "Unknown"
// for ids missing from the list.
func CategoryName(categories []Category, id string) string {
	if c, ok := FindCategory(categories, id); ok {
		return c.Name
	}
	return "Unknown"
}

// CategoryIcon resolves a category id to its icon, falling back for
// missing ids.
func CategoryIcon(categories []Category, id string) string {
	if c, ok := FindCategory(categories, id); ok {
		return c.Icon
	}
	return FallbackIcon
}
