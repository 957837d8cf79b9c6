package domain

import (
	"fmt"
	"time"
)

// DateRange is a pair of calendar dates, inclusive on both ends. It is both
// the query window sent to the sales data service and the boundary of every
// aggregation.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewDateRange builds a range and rejects from > to at the boundary. Ranges
// are never silently swapped; an inverted range is a caller bug that must
// surface before it reaches the aggregation path.
func NewDateRange(from, to time.Time) (DateRange, error) {
	from = Midnight(from)
	to = Midnight(to)

	if from.After(to) {
		return DateRange{}, fmt.Errorf("invalid date range: from %s is after to %s",
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	return DateRange{From: from, To: to}, nil
}

// Contains reports whether date falls inside the range.
func (r DateRange) Contains(date time.Time) bool {
	d := Midnight(date)
	return !d.Before(r.From) && !d.After(r.To)
}

// Days enumerates every calendar date in the range, in order.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.From.Format(time.DateOnly), r.To.Format(time.DateOnly))
}

// Midnight truncates t to its calendar date, keeping the location. All range
// arithmetic happens in the reference clock's timezone; no conversion occurs.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
