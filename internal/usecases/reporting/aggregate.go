package reporting

import (
	"strconv"

	"github.com/team6/sales-report-api/internal/domain"
)

// GroupKeyFn extracts the grouping label from a record.
type GroupKeyFn func(domain.SalesRecord) string

// Key extractors for the supported breakdowns.
var (
	KeyByDate     GroupKeyFn = func(r domain.SalesRecord) string { return r.SalesDateString() }
	KeyByCategory GroupKeyFn = func(r domain.SalesRecord) string { return r.Category }
	KeyByChannel  GroupKeyFn = func(r domain.SalesRecord) string { return r.SalesChannel }
	KeyByTactics  GroupKeyFn = func(r domain.SalesRecord) string { return r.Tactics }
	KeyByLocation GroupKeyFn = func(r domain.SalesRecord) string {
		if code, ok := domain.LocationCodes[r.LocationID]; ok {
			return code
		}
		return strconv.Itoa(r.LocationID)
	}
)

// Aggregate buckets records by keyFn and sums amounts per bucket. Groups come
// out in first-seen order, not sorted; consumers that need a display order
// sort the output themselves. An empty key collapses into the single unset
// bucket instead of splitting into indistinguishable blank groups. Every
// record lands in exactly one group, so the group totals always add up to the
// input total. Callers pre-filter to the desired period; Aggregate never
// drops or filters.
func Aggregate(records []domain.SalesRecord, keyFn GroupKeyFn) []domain.AggregatedGroup {
	totals := make(map[string]int64, len(records))
	order := make([]string, 0, len(records))

	for _, record := range records {
		key := keyFn(record)
		if key == "" {
			key = domain.UnsetGroupLabel
		}

		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += record.Amount
	}

	groups := make([]domain.AggregatedGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, domain.AggregatedGroup{Label: key, Total: totals[key]})
	}

	return groups
}

// SumAmounts totals the amounts of a record set without grouping.
func SumAmounts(records []domain.SalesRecord) int64 {
	var total int64
	for _, record := range records {
		total += record.Amount
	}
	return total
}
