package domain

import "time"

// DailySummary is a cached per-location, per-day revenue total. Closed days
// are immutable upstream, so once synced the cache row never changes except
// through the nightly upsert.
type DailySummary struct {
	ID          int       `json:"id,omitempty"`
	LocationID  int       `json:"location_id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	TotalAmount int64     `json:"total_amount"`
	ReportCount int       `json:"report_count"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// DashboardSummary feeds the revenue cards: fixed-window totals, their
// period deltas, and the target achievement rate.
type DashboardSummary struct {
	CurrentMonthTotal int64             `json:"current_month_total"`
	LastMonth         *ComparisonResult `json:"last_month"`
	CurrentWeek       *ComparisonResult `json:"current_week"`
	TargetAmount      *int64            `json:"target_amount,omitempty"`
	AchievementRate   *float64          `json:"achievement_rate,omitempty"`
}
