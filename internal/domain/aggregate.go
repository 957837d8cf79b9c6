package domain

// UnsetGroupLabel is the sentinel bucket for records whose grouping key is
// empty or missing. Coercing here keeps blanks in a single group instead of
// splitting into several indistinguishable ones.
const UnsetGroupLabel = "unset"

// AggregatedGroup is one bucket of a grouping: the raw key value and the sum
// of amounts that landed in it.
type AggregatedGroup struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// ComparisonResult is the outcome of comparing a current-period total with a
// prior-period total. PercentChange is nil when the prior total is zero:
// there is no meaningful comparison, which is distinct from a 0% change.
type ComparisonResult struct {
	CurrentTotal  int64    `json:"current_total"`
	PriorTotal    int64    `json:"prior_total"`
	PercentChange *float64 `json:"percent_change,omitempty"`
}

// SeriesPoint is one day of a revenue time series.
type SeriesPoint struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}
