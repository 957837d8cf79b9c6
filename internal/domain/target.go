package domain

// SalesTarget is a monthly revenue goal for one location. TargetDate uses
// the wire format YYYY-MM-DD (first day of the month).
type SalesTarget struct {
	LocationID   int    `json:"location_id"`
	TargetDate   string `json:"target_date"`
	TargetAmount int64  `json:"target_amount"`
}

// TargetMonth returns the YYYY-MM prefix of the target date.
func (t SalesTarget) TargetMonth() string {
	if len(t.TargetDate) < 7 {
		return t.TargetDate
	}
	return t.TargetDate[:7]
}
