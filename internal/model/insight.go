package model

// InsightKind classifies a generated insight.
type InsightKind string

const (
	// InsightPositive marks good news.
	InsightPositive InsightKind = "positive"
	// InsightWarning marks something worth attention.
	InsightWarning InsightKind = "warning"
	// InsightNeutral marks an observation with no strong signal.
	InsightNeutral InsightKind = "neutral"
)

// Insight is a qualitative observation derived from the user's finances
// for a period. Severity ordering is implicit in generation order.
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Icon    string      `json:"icon"`
}
