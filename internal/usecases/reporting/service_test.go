package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	salesdatamocks "github.com/team6/sales-report-api/infrastructure/integrator/salesdata/mocks"
	repomocks "github.com/team6/sales-report-api/infrastructure/repository/mocks"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func mustRange(t *testing.T, from, to string) domain.DateRange {
	t.Helper()

	fromDate, err := time.Parse(time.DateOnly, from)
	require.NoError(t, err)
	toDate, err := time.Parse(time.DateOnly, to)
	require.NoError(t, err)

	r, err := domain.NewDateRange(fromDate, toDate)
	require.NoError(t, err)
	return r
}

func TestService_DashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := salesdatamocks.NewMockSalesDataIntegrator(ctrl)
	service := NewService(&config.Config{}, mockIntegrator)

	// 2025-03-12 is a Wednesday.
	now := date(2025, time.March, 12)

	currentMonth := mustRange(t, "2025-03-01", "2025-03-12")
	previousMonth := mustRange(t, "2025-02-01", "2025-02-28")
	monthBeforePrevious := mustRange(t, "2025-01-01", "2025-01-31")
	currentWeek := mustRange(t, "2025-03-10", "2025-03-12")
	previousWeek := mustRange(t, "2025-03-03", "2025-03-09")

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), currentMonth, nil).
		Return([]domain.SalesRecord{
			record("2025-03-05", 600, domain.CategoryDrink),
			record("2025-03-11", 500, domain.CategoryAlcohol),
		}, nil)

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), previousMonth, nil).
		Return([]domain.SalesRecord{
			record("2025-02-10", 2000, domain.CategoryDrink),
		}, nil)

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), monthBeforePrevious, nil).
		Return([]domain.SalesRecord{
			record("2025-01-20", 1000, domain.CategoryDrink),
		}, nil)

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), currentWeek, nil).
		Return([]domain.SalesRecord{
			record("2025-03-10", 220, domain.CategoryDrink),
		}, nil)

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), previousWeek, nil).
		Return([]domain.SalesRecord{
			record("2025-03-04", 200, domain.CategoryDrink),
		}, nil)

	mockIntegrator.EXPECT().
		ListTargets(gomock.Any()).
		Return([]*domain.SalesTarget{
			{LocationID: domain.LocationKanto, TargetDate: "2025-03-01", TargetAmount: 10000},
			{LocationID: domain.LocationKyushu, TargetDate: "2025-04-01", TargetAmount: 99999},
		}, nil)

	summary, err := service.DashboardSummary(context.Background(), nil, now)
	require.NoError(t, err)

	assert.Equal(t, int64(1100), summary.CurrentMonthTotal)

	// The last-month card compares the closed previous month against the
	// month before it, never the running current month.
	require.NotNil(t, summary.LastMonth)
	assert.Equal(t, int64(2000), summary.LastMonth.CurrentTotal)
	assert.Equal(t, int64(1000), summary.LastMonth.PriorTotal)
	require.NotNil(t, summary.LastMonth.PercentChange)
	assert.InDelta(t, 100.0, *summary.LastMonth.PercentChange, 0.001)

	require.NotNil(t, summary.CurrentWeek)
	require.NotNil(t, summary.CurrentWeek.PercentChange)
	assert.InDelta(t, 10.0, *summary.CurrentWeek.PercentChange, 0.001)

	// Only the 2025-03 target counts toward the achievement rate.
	require.NotNil(t, summary.TargetAmount)
	assert.Equal(t, int64(10000), *summary.TargetAmount)
	require.NotNil(t, summary.AchievementRate)
	assert.InDelta(t, 11.0, *summary.AchievementRate, 0.001)
}

func TestService_DashboardSummary_EmptyPriorPeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := salesdatamocks.NewMockSalesDataIntegrator(ctrl)
	service := NewService(&config.Config{}, mockIntegrator)

	now := date(2025, time.March, 12)

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), gomock.Any(), nil).
		Return(nil, nil).
		Times(5)

	mockIntegrator.EXPECT().
		ListTargets(gomock.Any()).
		Return(nil, nil)

	summary, err := service.DashboardSummary(context.Background(), nil, now)
	require.NoError(t, err)

	assert.Equal(t, int64(0), summary.CurrentMonthTotal)
	assert.Nil(t, summary.LastMonth.PercentChange, "zero prior means no comparison")
	assert.Nil(t, summary.CurrentWeek.PercentChange)
	assert.Nil(t, summary.TargetAmount)
	assert.Nil(t, summary.AchievementRate)
}

func TestService_RevenueSeries_ZeroFilled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := salesdatamocks.NewMockSalesDataIntegrator(ctrl)
	service := NewService(&config.Config{}, mockIntegrator)

	dateRange := mustRange(t, "2025-03-01", "2025-03-03")

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), dateRange, nil).
		Return([]domain.SalesRecord{
			record("2025-03-01", 100, domain.CategoryDrink),
			record("2025-03-03", 300, domain.CategoryDrink),
			record("2025-03-03", 50, domain.CategoryAlcohol),
		}, nil)

	series, err := service.RevenueSeries(context.Background(), dateRange, nil)
	require.NoError(t, err)

	assert.Equal(t, []domain.SeriesPoint{
		{Date: "2025-03-01", Value: 100},
		{Date: "2025-03-02", Value: 0},
		{Date: "2025-03-03", Value: 350},
	}, series)
}

func TestService_DailyTotals_UsesCacheForClosedDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := salesdatamocks.NewMockSalesDataIntegrator(ctrl)
	mockRepo := repomocks.NewMockDailySummaryRepository(ctrl)

	service := NewService(&config.Config{}, mockIntegrator).WithCache(mockRepo)

	dateRange := mustRange(t, "2025-03-01", "2025-03-03")
	now := date(2025, time.March, 10)

	// Cache covers the 1st and the 3rd; only the 2nd needs a live fetch.
	mockRepo.EXPECT().
		GetByDateRange(gomock.Any(), nil, dateRange.From, dateRange.To).
		Return([]*domain.DailySummary{
			{LocationID: domain.LocationKanto, Date: "2025-03-01", TotalAmount: 100},
			{LocationID: domain.LocationKinki, Date: "2025-03-01", TotalAmount: 40},
			{LocationID: domain.LocationKanto, Date: "2025-03-03", TotalAmount: 300},
		}, nil)

	liveRange := mustRange(t, "2025-03-02", "2025-03-02")
	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), liveRange, nil).
		Return([]domain.SalesRecord{
			record("2025-03-02", 250, domain.CategoryDrink),
		}, nil)

	totals, err := service.dailyTotals(context.Background(), dateRange, nil, now)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{
		"2025-03-01": 140,
		"2025-03-02": 250,
		"2025-03-03": 300,
	}, totals)
}

func TestService_DailyTotals_TodayAlwaysLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := salesdatamocks.NewMockSalesDataIntegrator(ctrl)
	mockRepo := repomocks.NewMockDailySummaryRepository(ctrl)

	service := NewService(&config.Config{}, mockIntegrator).WithCache(mockRepo)

	now := date(2025, time.March, 3)
	dateRange := mustRange(t, "2025-03-02", "2025-03-03")

	// A stale cache row for today must not shadow the live value.
	mockRepo.EXPECT().
		GetByDateRange(gomock.Any(), nil, dateRange.From, dateRange.To).
		Return([]*domain.DailySummary{
			{LocationID: domain.LocationKanto, Date: "2025-03-02", TotalAmount: 100},
			{LocationID: domain.LocationKanto, Date: "2025-03-03", TotalAmount: 1},
		}, nil)

	liveRange := mustRange(t, "2025-03-03", "2025-03-03")
	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), liveRange, nil).
		Return([]domain.SalesRecord{
			record("2025-03-03", 500, domain.CategoryDrink),
		}, nil)

	totals, err := service.dailyTotals(context.Background(), dateRange, nil, now)
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{
		"2025-03-02": 100,
		"2025-03-03": 500,
	}, totals)
}

func TestService_Breakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := salesdatamocks.NewMockSalesDataIntegrator(ctrl)
	service := NewService(&config.Config{}, mockIntegrator)

	dateRange := mustRange(t, "2025-03-01", "2025-03-02")

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), dateRange, nil).
		Return([]domain.SalesRecord{
			record("2025-03-01", 100, domain.CategoryDrink),
			record("2025-03-02", 200, domain.CategoryAlcohol),
			record("2025-03-02", 50, domain.CategoryDrink),
		}, nil)

	groups, err := service.Breakdown(context.Background(), dateRange, nil, "category")
	require.NoError(t, err)

	assert.Equal(t, []domain.AggregatedGroup{
		{Label: domain.CategoryDrink, Total: 150},
		{Label: domain.CategoryAlcohol, Total: 200},
	}, groups)
}

func TestService_Breakdown_UnknownGroupKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := salesdatamocks.NewMockSalesDataIntegrator(ctrl)
	service := NewService(&config.Config{}, mockIntegrator)

	dateRange := mustRange(t, "2025-03-01", "2025-03-02")

	_, err := service.Breakdown(context.Background(), dateRange, nil, "memo")
	assert.ErrorIs(t, err, ErrUnknownGroupKey)
}

func TestService_PeriodComparison(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := salesdatamocks.NewMockSalesDataIntegrator(ctrl)
	service := NewService(&config.Config{}, mockIntegrator)

	current := mustRange(t, "2025-03-01", "2025-03-02")
	prior := mustRange(t, "2025-02-01", "2025-02-02")

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), current, nil).
		Return([]domain.SalesRecord{record("2025-03-01", 90, domain.CategoryDrink)}, nil)

	mockIntegrator.EXPECT().
		GetSalesByRange(gomock.Any(), prior, nil).
		Return([]domain.SalesRecord{record("2025-02-01", 100, domain.CategoryDrink)}, nil)

	result, err := service.PeriodComparison(context.Background(), current, prior, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(90), result.CurrentTotal)
	assert.Equal(t, int64(100), result.PriorTotal)
	require.NotNil(t, result.PercentChange)
	assert.InDelta(t, -10.0, *result.PercentChange, 0.001)
}
