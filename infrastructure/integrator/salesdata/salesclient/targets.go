package salesclient

import (
	"context"
	"net/url"
	"strconv"

	salesdatadomain "github.com/team6/sales-report-api/infrastructure/integrator/salesdata/domain"
	"github.com/team6/sales-report-api/internal/domain"
)

func (c *SalesDataClient) GetTargets(ctx context.Context) ([]salesdatadomain.TargetRow, error) {
	var rows []salesdatadomain.TargetRow
	if err := c.getJSON(ctx, "get_sales_target", nil, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *SalesDataClient) PostTarget(ctx context.Context, target *domain.SalesTarget) error {
	query := url.Values{}
	query.Set("location_id", strconv.Itoa(target.LocationID))
	query.Set("target_date", target.TargetDate)
	query.Set("target_amount", strconv.FormatInt(target.TargetAmount, 10))

	return c.postParams(ctx, "post_sales_target", query)
}
