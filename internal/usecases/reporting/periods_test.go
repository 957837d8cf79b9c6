package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCurrentMonth(t *testing.T) {
	r := CurrentMonth(date(2025, time.March, 15))

	assert.Equal(t, date(2025, time.March, 1), r.From)
	assert.Equal(t, date(2025, time.March, 15), r.To)
}

func TestCurrentMonth_TruncatesClock(t *testing.T) {
	now := time.Date(2025, time.March, 15, 18, 42, 7, 0, time.UTC)
	r := CurrentMonth(now)

	assert.Equal(t, date(2025, time.March, 15), r.To)
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		from time.Time
		to   time.Time
	}{
		{
			name: "mid-year month",
			now:  date(2025, time.July, 20),
			from: date(2025, time.June, 1),
			to:   date(2025, time.June, 30),
		},
		{
			name: "january rolls over to last december",
			now:  date(2025, time.January, 15),
			from: date(2024, time.December, 1),
			to:   date(2024, time.December, 31),
		},
		{
			name: "previous month is february, non leap",
			now:  date(2025, time.March, 10),
			from: date(2025, time.February, 1),
			to:   date(2025, time.February, 28),
		},
		{
			name: "previous month is february, leap year",
			now:  date(2024, time.March, 10),
			from: date(2024, time.February, 1),
			to:   date(2024, time.February, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PreviousMonth(tt.now)
			assert.Equal(t, tt.from, r.From)
			assert.Equal(t, tt.to, r.To)
		})
	}
}

func TestMonthBeforePrevious(t *testing.T) {
	r := MonthBeforePrevious(date(2025, time.January, 15))

	assert.Equal(t, date(2024, time.November, 1), r.From)
	assert.Equal(t, date(2024, time.November, 30), r.To)
}

func TestCurrentWeek(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		from time.Time
	}{
		{
			// 2025-03-10 is a Monday
			name: "monday starts its own week",
			now:  date(2025, time.March, 10),
			from: date(2025, time.March, 10),
		},
		{
			name: "wednesday reaches back two days",
			now:  date(2025, time.March, 12),
			from: date(2025, time.March, 10),
		},
		{
			// Sunday counts as weekday 7, not the start of a new week
			name: "sunday reaches back to monday six days prior",
			now:  date(2025, time.March, 16),
			from: date(2025, time.March, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CurrentWeek(tt.now)
			assert.Equal(t, tt.from, r.From)
			assert.Equal(t, tt.now, r.To)
		})
	}
}

func TestPreviousWeek(t *testing.T) {
	// 2025-03-12 is a Wednesday; its week starts Monday 2025-03-10
	r := PreviousWeek(date(2025, time.March, 12))

	assert.Equal(t, date(2025, time.March, 3), r.From)
	assert.Equal(t, date(2025, time.March, 9), r.To)
	assert.Equal(t, time.Monday, r.From.Weekday())
	assert.Equal(t, time.Sunday, r.To.Weekday())
}

func TestPreviousWeek_CrossesYearBoundary(t *testing.T) {
	// 2025-01-01 is a Wednesday
	r := PreviousWeek(date(2025, time.January, 1))

	assert.Equal(t, date(2024, time.December, 23), r.From)
	assert.Equal(t, date(2024, time.December, 29), r.To)
}
