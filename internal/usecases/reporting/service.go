package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/team6/sales-report-api/infrastructure/integrator/salesdata"
	"github.com/team6/sales-report-api/infrastructure/repository"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/pkg/log"
	"github.com/team6/sales-report-api/pkg/utils"
)

// Service orchestrates fetching and the pure computations. Fetching is the
// only concurrent part; aggregation and comparison run strictly after the
// joins, over complete snapshots.
type Service struct {
	cfg               *config.Config
	salesService      salesdata.SalesDataIntegrator
	summaryRepository repository.DailySummaryRepository
	useCache          bool
}

func NewService(
	cfg *config.Config,
	salesService salesdata.SalesDataIntegrator,
) *Service {
	return &Service{
		cfg:          cfg,
		salesService: salesService,
	}
}

// WithCache enables reading closed-day totals from the daily summary cache
// instead of the external API.
func (s *Service) WithCache(summaryRepo repository.DailySummaryRepository) *Service {
	s.summaryRepository = summaryRepo
	s.useCache = summaryRepo != nil
	return s
}

func (s *Service) DashboardSummary(ctx context.Context, locationID *int, now time.Time) (*domain.DashboardSummary, error) {
	periods := []domain.DateRange{
		CurrentMonth(now),
		PreviousMonth(now),
		MonthBeforePrevious(now),
		CurrentWeek(now),
		PreviousWeek(now),
	}

	totals := make([]int64, len(periods))
	errs := make([]error, len(periods))

	// The period fetches are independent; join before any comparison.
	wg := sync.WaitGroup{}
	for i, period := range periods {
		wg.Add(1)
		go func(i int, period domain.DateRange) {
			defer wg.Done()
			totals[i], errs[i] = s.totalForRange(ctx, period, locationID, now)
		}(i, period)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("period", periods[i].String()).
				Error("failed to fetch period total")
			return nil, err
		}
	}

	// The last-month card shows the closed previous month against the month
	// before it; only the achievement card uses the running current month.
	lastMonth := Compare(totals[1], totals[2])
	currentWeek := Compare(totals[3], totals[4])

	summary := &domain.DashboardSummary{
		CurrentMonthTotal: totals[0],
		LastMonth:         &lastMonth,
		CurrentWeek:       &currentWeek,
	}

	target, err := s.monthlyTarget(ctx, locationID, now)
	if err != nil {
		// Targets decorate the dashboard; their absence never blocks it.
		log.ForContext(ctx).WithError(err).Warn("failed to fetch monthly target")
		return summary, nil
	}

	if target != nil && *target > 0 {
		summary.TargetAmount = target
		rate := utils.RoundWithTwoDecimalPlace(float64(totals[0]) / float64(*target) * 100)
		summary.AchievementRate = &rate
	}

	return summary, nil
}

func (s *Service) RevenueSeries(ctx context.Context, dateRange domain.DateRange, locationID *int) ([]domain.SeriesPoint, error) {
	totalsByDate, err := s.dailyTotals(ctx, dateRange, locationID, time.Now())
	if err != nil {
		return nil, err
	}

	days := dateRange.Days()
	series := make([]domain.SeriesPoint, 0, len(days))
	for _, day := range days {
		date := day.Format(time.DateOnly)
		series = append(series, domain.SeriesPoint{Date: date, Value: totalsByDate[date]})
	}

	return series, nil
}

func (s *Service) Breakdown(ctx context.Context, dateRange domain.DateRange, locationID *int, groupKey string) ([]domain.AggregatedGroup, error) {
	keyFn, err := groupKeyFn(groupKey)
	if err != nil {
		return nil, err
	}

	records, err := s.salesService.GetSalesByRange(ctx, dateRange, locationID)
	if err != nil {
		return nil, err
	}

	return Aggregate(records, keyFn), nil
}

func (s *Service) PeriodComparison(ctx context.Context, current, prior domain.DateRange, locationID *int) (*domain.ComparisonResult, error) {
	now := time.Now()

	var (
		currentTotal, priorTotal int64
		currentErr, priorErr     error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		currentTotal, currentErr = s.totalForRange(ctx, current, locationID, now)
	}()

	go func() {
		defer wg.Done()
		priorTotal, priorErr = s.totalForRange(ctx, prior, locationID, now)
	}()

	wg.Wait()

	if currentErr != nil {
		return nil, currentErr
	}
	if priorErr != nil {
		return nil, priorErr
	}

	result := Compare(currentTotal, priorTotal)
	return &result, nil
}

func (s *Service) RecordsForRange(ctx context.Context, dateRange domain.DateRange, locationID *int) ([]domain.SalesRecord, error) {
	return s.salesService.GetSalesByRange(ctx, dateRange, locationID)
}

func (s *Service) SubmitReport(ctx context.Context, report *domain.NewSalesReport) error {
	return s.salesService.SubmitReport(ctx, report)
}

func groupKeyFn(groupKey string) (GroupKeyFn, error) {
	switch groupKey {
	case "date":
		return KeyByDate, nil
	case "category":
		return KeyByCategory, nil
	case "sales_channel", "channel":
		return KeyByChannel, nil
	case "tactics":
		return KeyByTactics, nil
	case "location", "location_id":
		return KeyByLocation, nil
	default:
		return nil, ErrUnknownGroupKey
	}
}

func (s *Service) totalForRange(ctx context.Context, dateRange domain.DateRange, locationID *int, now time.Time) (int64, error) {
	totalsByDate, err := s.dailyTotals(ctx, dateRange, locationID, now)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, amount := range totalsByDate {
		total += amount
	}

	return total, nil
}

// dailyTotals resolves per-day totals for the range. With the cache enabled,
// closed days come from the daily summary table and only uncovered days hit
// the external API. Today is always fetched live: its rows are still arriving
// and the nightly sync has not sealed it yet.
func (s *Service) dailyTotals(ctx context.Context, dateRange domain.DateRange, locationID *int, now time.Time) (map[string]int64, error) {
	today := domain.Midnight(now).Format(time.DateOnly)

	totals := make(map[string]int64, len(dateRange.Days()))

	covered := make(map[string]bool)
	if s.useCache {
		summaries, err := s.summaryRepository.GetByDateRange(ctx, locationID, dateRange.From, dateRange.To)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("daily summary cache unavailable, falling back to live fetch")
		} else {
			for _, summary := range summaries {
				if summary.Date == today {
					continue
				}
				totals[summary.Date] += summary.TotalAmount
				covered[summary.Date] = true
			}
		}
	}

	missing := s.missingDays(dateRange, covered)
	if len(missing) == 0 {
		return totals, nil
	}

	liveRange := domain.DateRange{From: missing[0], To: missing[len(missing)-1]}
	records, err := s.salesService.GetSalesByRange(ctx, liveRange, locationID)
	if err != nil {
		return nil, err
	}

	missingSet := make(map[string]bool, len(missing))
	for _, day := range missing {
		missingSet[day.Format(time.DateOnly)] = true
	}

	// The live window spans cached days too when gaps are non-contiguous;
	// only uncovered dates may contribute, or cached days would double-count.
	for _, record := range records {
		date := record.SalesDateString()
		if missingSet[date] {
			totals[date] += record.Amount
		}
	}

	return totals, nil
}

func (s *Service) missingDays(dateRange domain.DateRange, covered map[string]bool) []time.Time {
	var missing []time.Time
	for _, day := range dateRange.Days() {
		if !covered[day.Format(time.DateOnly)] {
			missing = append(missing, day)
		}
	}
	return missing
}

func (s *Service) monthlyTarget(ctx context.Context, locationID *int, now time.Time) (*int64, error) {
	targets, err := s.salesService.ListTargets(ctx)
	if err != nil {
		return nil, err
	}

	month := now.Format("2006-01")

	var total int64
	var found bool
	for _, target := range targets {
		if target.TargetMonth() != month {
			continue
		}
		if locationID != nil && target.LocationID != *locationID {
			continue
		}
		total += target.TargetAmount
		found = true
	}

	if !found {
		return nil, nil
	}

	return &total, nil
}
