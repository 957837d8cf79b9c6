package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/internal/usecases/reporting"
	"github.com/team6/sales-report-api/pkg/apiErrors"
	"github.com/team6/sales-report-api/pkg/log"
	"github.com/team6/sales-report-api/pkg/utils"
)

// DashboardSummary serves the revenue cards: month and week totals with
// their period deltas and the target achievement rate.
func DashboardSummary(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, _ := employeeClaims(r)

		locationID, err := resolveLocationID(r, claims)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "location_id must be an integer", nil)
			return
		}

		summary, err := service.DashboardSummary(r.Context(), locationID, time.Now())
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build summary")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to build dashboard summary", nil)
			return
		}

		writeJSON(w, summary)
	})
}

// RevenueSeries serves the line chart: one point per day, zero-filled.
func RevenueSeries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, _ := employeeClaims(r)

		dateRange, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		locationID, err := resolveLocationID(r, claims)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "location_id must be an integer", nil)
			return
		}

		series, err := service.RevenueSeries(r.Context(), dateRange, locationID)
		if err != nil {
			logger.WithError(err).WithField("range", dateRange.String()).
				Error("dashboard: failed to build revenue series")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to build revenue series", nil)
			return
		}

		writeJSON(w, map[string]any{"series": series})
	})
}

// Breakdown serves the pie charts: grouped totals over a range.
func Breakdown(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, _ := employeeClaims(r)

		dateRange, err := parseDateRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		locationID, err := resolveLocationID(r, claims)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "location_id must be an integer", nil)
			return
		}

		groupKey := r.URL.Query().Get("group_by")
		if groupKey == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "group_by is required", nil)
			return
		}

		groups, err := service.Breakdown(r.Context(), dateRange, locationID, groupKey)
		if err != nil {
			if errors.Is(err, reporting.ErrUnknownGroupKey) {
				apiErrors.WriteError(w, apiErrors.ErrUnknownCode, "unknown group_by value", nil)
				return
			}

			logger.WithError(err).WithField("group_by", groupKey).
				Error("dashboard: failed to build breakdown")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to build breakdown", nil)
			return
		}

		writeJSON(w, map[string]any{"groups": groups})
	})
}

// PeriodComparison compares two arbitrary ranges.
func PeriodComparison(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, _ := employeeClaims(r)

		current, err := parseNamedRange(r, "current_from", "current_until")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		prior, err := parseNamedRange(r, "prior_from", "prior_until")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		locationID, err := resolveLocationID(r, claims)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "location_id must be an integer", nil)
			return
		}

		result, err := service.PeriodComparison(r.Context(), current, prior, locationID)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to compare periods")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to compare periods", nil)
			return
		}

		writeJSON(w, result)
	})
}

func parseNamedRange(r *http.Request, fromParam, toParam string) (domain.DateRange, error) {
	from, err := utils.ParseDate(r.URL.Query().Get(fromParam))
	if err != nil {
		return domain.DateRange{}, err
	}

	to, err := utils.ParseDate(r.URL.Query().Get(toParam))
	if err != nil {
		return domain.DateRange{}, err
	}

	return domain.NewDateRange(*from, *to)
}
