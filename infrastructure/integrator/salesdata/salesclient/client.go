package salesclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	salesdatadomain "github.com/team6/sales-report-api/infrastructure/integrator/salesdata/domain"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
)

// Client talks HTTP to the sales data service (an Azure Functions app).
type Client interface {
	GetSales(ctx context.Context, params salesdatadomain.GetSalesParams) ([]salesdatadomain.SalesRow, error)
	SendSales(ctx context.Context, report *domain.NewSalesReport) error
	GetEmployees(ctx context.Context) ([]salesdatadomain.EmployeeRow, error)
	AddEmployee(ctx context.Context, employee *domain.NewEmployee) error
	UpdateEmployeeRole(ctx context.Context, employeeNumber, role int) error
	UpdateEmployeeName(ctx context.Context, employeeNumber int, name string) error
	DeleteEmployee(ctx context.Context, employeeNumber int) error
	GetTargets(ctx context.Context) ([]salesdatadomain.TargetRow, error)
	PostTarget(ctx context.Context, target *domain.SalesTarget) error
}

type SalesDataClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.SalesData.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SalesDataClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// endpoint builds the URL for one function route with the given query
// parameters, appending the function key when configured.
func (c *SalesDataClient) endpoint(route string, query url.Values) (string, error) {
	endpoint, err := url.Parse(c.config.SalesData.URL)
	if err != nil {
		return "", fmt.Errorf("parsing sales data service base URL: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, route)

	if query == nil {
		query = url.Values{}
	}
	if c.config.SalesData.FunctionKey != "" {
		query.Set("code", c.config.SalesData.FunctionKey)
	}
	endpoint.RawQuery = query.Encode()

	return endpoint.String(), nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *SalesDataClient) getJSON(ctx context.Context, route string, query url.Values, out any) error {
	target, err := c.endpoint(route, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sales data service answered %s for %s", resp.Status, route)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", route, err)
	}

	return nil
}

// postParams performs a POST whose payload travels as query parameters, the
// convention of the sales data service for all mutating routes.
func (c *SalesDataClient) postParams(ctx context.Context, route string, query url.Values) error {
	target, err := c.endpoint(route, query)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sales data service answered %s for %s: %s", resp.Status, route, string(body))
	}

	return nil
}
