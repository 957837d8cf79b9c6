package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/internal/usecases/tableview"
	"github.com/team6/sales-report-api/pkg/middleware"
	"github.com/team6/sales-report-api/pkg/utils"
)

// employeeClaims pulls the authenticated employee from the request context.
func employeeClaims(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyEmployee).(*domain.Claims)
	return claims, ok
}

// parseDateRange reads sales_date_from / sales_date_until, both required. A
// sales_date parameter instead selects that single day.
func parseDateRange(r *http.Request) (domain.DateRange, error) {
	query := r.URL.Query()

	if single := query.Get("sales_date"); single != "" {
		day, err := utils.ParseDate(single)
		if err != nil {
			return domain.DateRange{}, err
		}
		return domain.NewDateRange(*day, *day)
	}

	from, err := utils.ParseDate(query.Get("sales_date_from"))
	if err != nil {
		return domain.DateRange{}, err
	}

	to, err := utils.ParseDate(query.Get("sales_date_until"))
	if err != nil {
		return domain.DateRange{}, err
	}

	if from.IsZero() || to.IsZero() {
		return domain.DateRange{}, fmt.Errorf("sales_date_from and sales_date_until are required")
	}

	return domain.NewDateRange(*from, *to)
}

// resolveLocationID resolves the branch filter. An explicit location_id
// parameter wins; staff accounts otherwise default to their own branch, while
// managers and admins see all branches.
func resolveLocationID(r *http.Request, claims *domain.Claims) (*int, error) {
	raw := r.URL.Query().Get("location_id")
	if raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		return &id, nil
	}

	if claims != nil && claims.Role == domain.RoleStaff {
		locationID := claims.LocationID
		return &locationID, nil
	}

	return nil, nil
}

// filterableColumns are the table fields accepted as exact-match filters.
var filterableColumns = []string{
	"sales_channel", "category", "tactics", "location_id", "employee_number",
}

// parseTableState builds the table view state from query parameters.
func parseTableState(r *http.Request) tableview.State {
	query := r.URL.Query()

	state := tableview.State{
		SortKey:  query.Get("sort_key"),
		Filters:  make(map[string]string),
		PageSize: tableview.DefaultPageSize,
	}

	if query.Get("sort_direction") == string(tableview.SortDesc) {
		state.SortDirection = tableview.SortDesc
	} else {
		state.SortDirection = tableview.SortAsc
	}

	for _, field := range filterableColumns {
		if value := query.Get("filter_" + field); value != "" {
			state.Filters[field] = value
		}
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		state.Page = page
	} else {
		state.Page = 1
	}

	return state
}
