package reporting

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/team6/sales-report-api/internal/domain"
)

// ErrUnknownGroupKey is returned when a breakdown asks for a grouping this
// engine does not know.
var ErrUnknownGroupKey = errors.New("unknown group key")

// Reporter produces the dashboard views: revenue cards with period deltas,
// the daily revenue series, and grouped breakdowns for the charts.
type Reporter interface {
	// DashboardSummary computes the revenue cards for the dashboard header.
	DashboardSummary(ctx context.Context, locationID *int, now time.Time) (*domain.DashboardSummary, error)

	// RevenueSeries returns one point per day of the range, zero-filled for
	// days without sales.
	RevenueSeries(ctx context.Context, dateRange domain.DateRange, locationID *int) ([]domain.SeriesPoint, error)

	// Breakdown groups the range's records by groupKey and sums per group.
	Breakdown(ctx context.Context, dateRange domain.DateRange, locationID *int, groupKey string) ([]domain.AggregatedGroup, error)

	// PeriodComparison compares the totals of two arbitrary ranges.
	PeriodComparison(ctx context.Context, current, prior domain.DateRange, locationID *int) (*domain.ComparisonResult, error)

	// RecordsForRange fetches the raw records backing the table views.
	RecordsForRange(ctx context.Context, dateRange domain.DateRange, locationID *int) ([]domain.SalesRecord, error)
}

// ReportSubmitter registers new reports with the sales data service.
type ReportSubmitter interface {
	SubmitReport(ctx context.Context, report *domain.NewSalesReport) error
}

// SalesReporter is the full sales surface the API wires up.
type SalesReporter interface {
	Reporter
	ReportSubmitter
}
