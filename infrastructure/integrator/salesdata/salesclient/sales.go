package salesclient

import (
	"context"
	"net/url"
	"strconv"

	salesdatadomain "github.com/team6/sales-report-api/infrastructure/integrator/salesdata/domain"
	"github.com/team6/sales-report-api/internal/domain"
)

// GetSales queries the get_sales route. The service accepts either a single
// sales_date or a sales_date_from / sales_date_until pair, each optionally
// narrowed by location_id.
func (c *SalesDataClient) GetSales(ctx context.Context, params salesdatadomain.GetSalesParams) ([]salesdatadomain.SalesRow, error) {
	query := url.Values{}

	if params.SalesDate != "" {
		query.Set("sales_date", params.SalesDate)
	} else {
		query.Set("sales_date_from", params.SalesDateFrom)
		query.Set("sales_date_until", params.SalesDateTo)
	}

	if params.LocationID != nil {
		query.Set("location_id", strconv.Itoa(*params.LocationID))
	}

	var rows []salesdatadomain.SalesRow
	if err := c.getJSON(ctx, "get_sales", query, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// SendSales submits one report via send_sales. The insert is unconditional;
// the service has no update path for reports.
func (c *SalesDataClient) SendSales(ctx context.Context, report *domain.NewSalesReport) error {
	query := url.Values{}
	query.Set("sales_date", report.SalesDate)
	query.Set("location_id", strconv.Itoa(report.LocationID))
	query.Set("amount", strconv.FormatInt(report.Amount, 10))
	query.Set("sales_channel", report.SalesChannel)
	query.Set("category", report.Category)
	query.Set("tactics", report.Tactics)
	query.Set("employee_number", strconv.Itoa(report.EmployeeNumber))
	query.Set("memo", report.Memo)

	return c.postParams(ctx, "send_sales", query)
}
