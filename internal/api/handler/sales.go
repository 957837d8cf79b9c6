package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/internal/usecases/reporting"
	"github.com/team6/sales-report-api/internal/usecases/tableview"
	"github.com/team6/sales-report-api/pkg/apiErrors"
	"github.com/team6/sales-report-api/pkg/log"
	"github.com/team6/sales-report-api/pkg/utils"
)

// GetSales returns the raw records of a date range.
func GetSales(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, _ := employeeClaims(r)

		dateRange, err := parseDateRange(r)
		if err != nil {
			logger.WithError(err).Warn("sales: invalid date range")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)
			return
		}

		locationID, err := resolveLocationID(r, claims)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "location_id must be an integer", nil)
			return
		}

		records, err := service.RecordsForRange(r.Context(), dateRange, locationID)
		if err != nil {
			logger.WithError(err).WithField("range", dateRange.String()).
				Error("sales: failed to fetch records")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to fetch sales records", nil)
			return
		}

		writeJSON(w, map[string]any{
			"items": recordsResponse(records),
			"total": len(records),
		})
	})
}

// SubmitSales registers one new report. Submission is an unconditional
// insert; the external store has no update path.
func SubmitSales(service reporting.ReportSubmitter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var report domain.NewSalesReport
		if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		claims, _ := employeeClaims(r)
		if claims != nil && report.EmployeeNumber == 0 {
			report.EmployeeNumber = claims.EmployeeNumber
		}
		if claims != nil && claims.Role == domain.RoleStaff {
			// Staff always report for their own branch.
			report.LocationID = claims.LocationID
		}

		if err := validateReport(&report); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := service.SubmitReport(r.Context(), &report); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"employee_number": report.EmployeeNumber,
				"sales_date":      report.SalesDate,
			}).Error("sales: failed to submit report")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to submit report", nil)
			return
		}

		logger.WithFields(log.Fields{
			"employee_number": report.EmployeeNumber,
			"sales_date":      report.SalesDate,
			"amount":          report.Amount,
		}).Info("sales: report submitted")

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, map[string]string{"message": "report registered"})
	})
}

// SalesTable serves one page of the filtered and sorted sales table.
func SalesTable(service reporting.Reporter) http.Handler {
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

		records, err := service.RecordsForRange(r.Context(), dateRange, locationID)
		if err != nil {
			logger.WithError(err).Error("sales: failed to fetch records for table")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to fetch sales records", nil)
			return
		}

		state := parseTableState(r)
		page := tableview.View(records, state, tableview.SalesColumns())

		writeJSON(w, map[string]any{
			"items":        recordsResponse(page.Items),
			"current_page": page.CurrentPage,
			"total_pages":  page.TotalPages,
			"total_count":  page.TotalCount,
		})
	})
}

// ExportSales streams the filtered and sorted set as CSV. Export bypasses
// pagination, never filtering or sorting.
func ExportSales(service reporting.Reporter) http.Handler {
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

		records, err := service.RecordsForRange(r.Context(), dateRange, locationID)
		if err != nil {
			logger.WithError(err).Error("sales: failed to fetch records for export")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to fetch sales records", nil)
			return
		}

		state := parseTableState(r)
		matching := tableview.Matching(records, state, tableview.SalesColumns())

		rows := make([][]string, 0, len(matching))
		for _, record := range matching {
			rows = append(rows, tableview.SalesCSVRow(record))
		}

		token, err := utils.GenerateID()
		if err != nil {
			token = "export"
		}
		filename := fmt.Sprintf("sales_%s_%s.csv", time.Now().Format("20060102"), token)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

		if err := tableview.WriteCSV(w, tableview.SalesCSVHeader, rows); err != nil {
			logger.WithError(err).Error("sales: failed to write CSV export")
		}
	})
}

func validateReport(report *domain.NewSalesReport) error {
	if _, err := time.Parse(time.DateOnly, report.SalesDate); err != nil {
		return fmt.Errorf("sales_date must be YYYY-MM-DD")
	}
	if report.Amount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}
	if report.EmployeeNumber <= 0 {
		return fmt.Errorf("employee_number is required")
	}
	if !domain.ValidLocationID(report.LocationID) {
		return fmt.Errorf("unknown location_id")
	}
	if !domain.ValidSalesChannel(report.SalesChannel) {
		return fmt.Errorf("unknown sales_channel")
	}
	if !domain.ValidCategory(report.Category) {
		return fmt.Errorf("unknown category")
	}
	if !domain.ValidTactics(report.Tactics) {
		return fmt.Errorf("unknown tactics")
	}
	return nil
}

// salesRecordResponse adds the wire-format date to the serialized record.
type salesRecordResponse struct {
	domain.SalesRecord
	SalesDate string `json:"sales_date"`
}

func recordsResponse(records []domain.SalesRecord) []salesRecordResponse {
	out := make([]salesRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, salesRecordResponse{
			SalesRecord: record,
			SalesDate:   record.SalesDateString(),
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("failed to encode response")
	}
}
