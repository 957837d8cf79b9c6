package utils

import "time"

// ParseDate parses a YYYY-MM-DD query parameter. An empty string yields the
// zero time so optional parameters can be detected by the caller.
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
