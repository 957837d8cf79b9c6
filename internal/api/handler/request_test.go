package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/internal/usecases/tableview"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		from     string
		to       string
		wantsErr bool
	}{
		{
			name: "range",
			url:  "/v1/sales?sales_date_from=2025-03-01&sales_date_until=2025-03-15",
			from: "2025-03-01", to: "2025-03-15",
		},
		{
			name: "single date selects one day",
			url:  "/v1/sales?sales_date=2025-03-10",
			from: "2025-03-10", to: "2025-03-10",
		},
		{
			name:     "inverted range rejected",
			url:      "/v1/sales?sales_date_from=2025-03-15&sales_date_until=2025-03-01",
			wantsErr: true,
		},
		{
			name:     "missing bounds rejected",
			url:      "/v1/sales?sales_date_from=2025-03-01",
			wantsErr: true,
		},
		{
			name:     "malformed date rejected",
			url:      "/v1/sales?sales_date=03/10/2025",
			wantsErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			dateRange, err := parseDateRange(r)
			if tt.wantsErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.from, dateRange.From.Format("2006-01-02"))
			assert.Equal(t, tt.to, dateRange.To.Format("2006-01-02"))
		})
	}
}

func TestResolveLocationID(t *testing.T) {
	t.Run("explicit parameter wins", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/sales?location_id=3", nil)
		claims := &domain.Claims{Role: domain.RoleStaff, LocationID: domain.LocationKyushu}

		locationID, err := resolveLocationID(r, claims)
		require.NoError(t, err)
		require.NotNil(t, locationID)
		assert.Equal(t, 3, *locationID)
	})

	t.Run("staff defaults to own branch", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/sales", nil)
		claims := &domain.Claims{Role: domain.RoleStaff, LocationID: domain.LocationKyushu}

		locationID, err := resolveLocationID(r, claims)
		require.NoError(t, err)
		require.NotNil(t, locationID)
		assert.Equal(t, domain.LocationKyushu, *locationID)
	})

	t.Run("manager sees all branches", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/sales", nil)
		claims := &domain.Claims{Role: domain.RoleManager, LocationID: domain.LocationKyushu}

		locationID, err := resolveLocationID(r, claims)
		require.NoError(t, err)
		assert.Nil(t, locationID)
	})

	t.Run("non-numeric parameter rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/v1/sales?location_id=tokyo", nil)

		_, err := resolveLocationID(r, nil)
		assert.Error(t, err)
	})
}

func TestParseTableState(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/v1/sales/table?sort_key=amount&sort_direction=desc&filter_category=飲料&filter_location_id=2&page=3", nil)

	state := parseTableState(r)

	assert.Equal(t, "amount", state.SortKey)
	assert.Equal(t, tableview.SortDesc, state.SortDirection)
	assert.Equal(t, 3, state.Page)
	assert.Equal(t, tableview.DefaultPageSize, state.PageSize)
	assert.Equal(t, map[string]string{
		"category":    "飲料",
		"location_id": "2",
	}, state.Filters)
}

func TestParseTableState_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/sales/table", nil)

	state := parseTableState(r)

	assert.Equal(t, tableview.SortAsc, state.SortDirection)
	assert.Equal(t, 1, state.Page)
	assert.Empty(t, state.Filters)
}

func TestValidateReport(t *testing.T) {
	valid := func() domain.NewSalesReport {
		return domain.NewSalesReport{
			SalesDate:      "2025-03-10",
			Amount:         12000,
			LocationID:     domain.LocationKanto,
			EmployeeNumber: 1042,
			SalesChannel:   domain.ChannelConvenience,
			Category:       domain.CategoryDrink,
			Tactics:        domain.TacticsEndCap,
		}
	}

	t.Run("valid report passes", func(t *testing.T) {
		report := valid()
		assert.NoError(t, validateReport(&report))
	})

	mutations := []struct {
		name   string
		mutate func(*domain.NewSalesReport)
	}{
		{"bad date", func(r *domain.NewSalesReport) { r.SalesDate = "10-03-2025" }},
		{"negative amount", func(r *domain.NewSalesReport) { r.Amount = -1 }},
		{"missing employee", func(r *domain.NewSalesReport) { r.EmployeeNumber = 0 }},
		{"unknown location", func(r *domain.NewSalesReport) { r.LocationID = 9 }},
		{"unknown channel", func(r *domain.NewSalesReport) { r.SalesChannel = "TV" }},
		{"unknown category", func(r *domain.NewSalesReport) { r.Category = "菓子" }},
		{"unknown tactics", func(r *domain.NewSalesReport) { r.Tactics = "値引" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			report := valid()
			tt.mutate(&report)
			assert.Error(t, validateReport(&report))
		})
	}
}
