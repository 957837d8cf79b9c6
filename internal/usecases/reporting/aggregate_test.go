package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/team6/sales-report-api/internal/domain"
)

func record(salesDate string, amount int64, category string) domain.SalesRecord {
	d, _ := time.Parse(time.DateOnly, salesDate)
	return domain.SalesRecord{
		SalesDate:    d,
		Amount:       amount,
		Category:     category,
		SalesChannel: domain.ChannelSupermarket,
		Tactics:      domain.TacticsFlyer,
		LocationID:   domain.LocationKanto,
	}
}

func TestAggregate_SumConservation(t *testing.T) {
	records := []domain.SalesRecord{
		record("2025-03-01", 100, domain.CategoryDrink),
		record("2025-03-01", 250, domain.CategoryAlcohol),
		record("2025-03-02", 75, domain.CategoryDrink),
		record("2025-03-03", 0, domain.CategoryAlcohol),
		record("2025-03-03", 9999, ""),
	}

	groups := Aggregate(records, KeyByCategory)

	var groupTotal int64
	for _, g := range groups {
		groupTotal += g.Total
	}

	assert.Equal(t, SumAmounts(records), groupTotal)
}

func TestAggregate_GroupingCorrectness(t *testing.T) {
	records := []domain.SalesRecord{
		record("2025-03-01", 100, domain.CategoryDrink),
		record("2025-03-02", 200, domain.CategoryDrink),
		record("2025-03-03", 300, domain.CategoryAlcohol),
	}

	groups := Aggregate(records, KeyByCategory)

	assert.Len(t, groups, 2)
	assert.Equal(t, domain.AggregatedGroup{Label: domain.CategoryDrink, Total: 300}, groups[0])
	assert.Equal(t, domain.AggregatedGroup{Label: domain.CategoryAlcohol, Total: 300}, groups[1])
}

func TestAggregate_FirstSeenOrder(t *testing.T) {
	records := []domain.SalesRecord{
		record("2025-03-05", 10, "C"),
		record("2025-03-01", 20, "A"),
		record("2025-03-03", 30, "B"),
		record("2025-03-02", 40, "A"),
	}

	groups := Aggregate(records, KeyByCategory)

	labels := make([]string, 0, len(groups))
	for _, g := range groups {
		labels = append(labels, g.Label)
	}

	// Insertion order reflects source data order, never alphabetical.
	assert.Equal(t, []string{"C", "A", "B"}, labels)
}

func TestAggregate_EmptyKeyCoercedToUnset(t *testing.T) {
	records := []domain.SalesRecord{
		record("2025-03-01", 100, ""),
		record("2025-03-02", 200, ""),
		record("2025-03-03", 50, domain.CategoryDrink),
	}

	groups := Aggregate(records, KeyByCategory)

	assert.Len(t, groups, 2)
	assert.Equal(t, domain.UnsetGroupLabel, groups[0].Label)
	assert.Equal(t, int64(300), groups[0].Total)
}

func TestAggregate_EmptyInput(t *testing.T) {
	groups := Aggregate(nil, KeyByCategory)

	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestAggregate_ByDate(t *testing.T) {
	records := []domain.SalesRecord{
		record("2025-03-01", 100, domain.CategoryDrink),
		record("2025-03-02", 200, domain.CategoryDrink),
		record("2025-03-01", 300, domain.CategoryAlcohol),
	}

	groups := Aggregate(records, KeyByDate)

	assert.Equal(t, []domain.AggregatedGroup{
		{Label: "2025-03-01", Total: 400},
		{Label: "2025-03-02", Total: 200},
	}, groups)
}

func TestAggregate_ByLocationUsesCodes(t *testing.T) {
	records := []domain.SalesRecord{
		{LocationID: domain.LocationKanto, Amount: 10},
		{LocationID: domain.LocationKyushu, Amount: 20},
		{LocationID: 42, Amount: 30}, // unknown location keeps its numeric id
	}

	groups := Aggregate(records, KeyByLocation)

	assert.Equal(t, []domain.AggregatedGroup{
		{Label: "KAT", Total: 10},
		{Label: "KYU", Total: 20},
		{Label: "42", Total: 30},
	}, groups)
}
