package reporting

import (
	"time"

	"github.com/team6/sales-report-api/internal/domain"
)

// Canonical dashboard periods, all derived from a single reference instant.
// Every range stays in the reference clock's timezone; no conversion occurs.

// CurrentMonth returns the first of the month through now.
func CurrentMonth(now time.Time) domain.DateRange {
	return domain.DateRange{
		From: firstOfMonth(now),
		To:   domain.Midnight(now),
	}
}

// PreviousMonth returns the full calendar month before now's month. Month
// arithmetic rolls over year boundaries, so January yields last December.
func PreviousMonth(now time.Time) domain.DateRange {
	return fullMonth(now, -1)
}

// MonthBeforePrevious returns the full calendar month two months back.
func MonthBeforePrevious(now time.Time) domain.DateRange {
	return fullMonth(now, -2)
}

// CurrentWeek returns Monday of now's week through now. Sunday counts as
// weekday 7, so a Sunday reference reaches back to the Monday six days prior.
func CurrentWeek(now time.Time) domain.DateRange {
	return domain.DateRange{
		From: mondayOf(now),
		To:   domain.Midnight(now),
	}
}

// PreviousWeek returns the full Monday..Sunday week before the current one.
func PreviousWeek(now time.Time) domain.DateRange {
	monday := mondayOf(now)
	return domain.DateRange{
		From: monday.AddDate(0, 0, -7),
		To:   monday.AddDate(0, 0, -1),
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// fullMonth shifts now's month by months and returns its first..last day.
// Day 0 of the following month resolves to the last day, so variable month
// lengths need no table.
func fullMonth(now time.Time, months int) domain.DateRange {
	first := firstOfMonth(now).AddDate(0, months, 0)
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, first.Location())

	return domain.DateRange{From: first, To: last}
}

func mondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	return domain.Midnight(t).AddDate(0, 0, -(weekday - 1))
}
