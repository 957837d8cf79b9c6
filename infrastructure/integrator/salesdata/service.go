package salesdata

import (
	"context"
	"time"

	salesdatadomain "github.com/team6/sales-report-api/infrastructure/integrator/salesdata/domain"
	"github.com/team6/sales-report-api/infrastructure/integrator/salesdata/salesclient"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/pkg/log"
)

// SalesDataIntegrator is the normalized view of the external sales data
// service. Everything downstream works with domain types; the wire shapes
// never leave this package.
type SalesDataIntegrator interface {
	GetSalesByRange(ctx context.Context, dateRange domain.DateRange, locationID *int) ([]domain.SalesRecord, error)
	GetSalesByDate(ctx context.Context, date time.Time, locationID *int) ([]domain.SalesRecord, error)
	SubmitReport(ctx context.Context, report *domain.NewSalesReport) error

	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	AddEmployee(ctx context.Context, employee *domain.NewEmployee) error
	UpdateEmployeeRole(ctx context.Context, employeeNumber, role int) error
	UpdateEmployeeName(ctx context.Context, employeeNumber int, name string) error
	DeleteEmployee(ctx context.Context, employeeNumber int) error

	ListTargets(ctx context.Context) ([]*domain.SalesTarget, error)
	SaveTarget(ctx context.Context, target *domain.SalesTarget) error
}

type SalesDataService struct {
	cfg    *config.Config
	Client salesclient.Client
}

func New(cfg *config.Config, client salesclient.Client) SalesDataIntegrator {
	return &SalesDataService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SalesDataService) GetSalesByRange(ctx context.Context, dateRange domain.DateRange, locationID *int) ([]domain.SalesRecord, error) {
	rows, err := s.Client.GetSales(ctx, salesdatadomain.GetSalesParams{
		SalesDateFrom: dateRange.From.Format(time.DateOnly),
		SalesDateTo:   dateRange.To.Format(time.DateOnly),
		LocationID:    locationID,
	})
	if err != nil {
		return nil, err
	}

	return normalizeRows(rows), nil
}

func (s *SalesDataService) GetSalesByDate(ctx context.Context, date time.Time, locationID *int) ([]domain.SalesRecord, error) {
	rows, err := s.Client.GetSales(ctx, salesdatadomain.GetSalesParams{
		SalesDate:  date.Format(time.DateOnly),
		LocationID: locationID,
	})
	if err != nil {
		return nil, err
	}

	return normalizeRows(rows), nil
}

func (s *SalesDataService) SubmitReport(ctx context.Context, report *domain.NewSalesReport) error {
	return s.Client.SendSales(ctx, report)
}

func (s *SalesDataService) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := s.Client.GetEmployees(ctx)
	if err != nil {
		return nil, err
	}

	employees := make([]*domain.Employee, 0, len(rows))
	for _, row := range rows {
		employees = append(employees, &domain.Employee{
			EmployeeNumber: row.EmployeeNumber,
			EmployeeName:   row.EmployeeName,
			LocationID:     row.LocationID,
			Role:           row.EmployeeRole,
			Email:          row.Email,
			PasswordHash:   row.PasswordHash,
		})
	}

	return employees, nil
}

func (s *SalesDataService) AddEmployee(ctx context.Context, employee *domain.NewEmployee) error {
	return s.Client.AddEmployee(ctx, employee)
}

func (s *SalesDataService) UpdateEmployeeRole(ctx context.Context, employeeNumber, role int) error {
	return s.Client.UpdateEmployeeRole(ctx, employeeNumber, role)
}

func (s *SalesDataService) UpdateEmployeeName(ctx context.Context, employeeNumber int, name string) error {
	return s.Client.UpdateEmployeeName(ctx, employeeNumber, name)
}

func (s *SalesDataService) DeleteEmployee(ctx context.Context, employeeNumber int) error {
	return s.Client.DeleteEmployee(ctx, employeeNumber)
}

func (s *SalesDataService) ListTargets(ctx context.Context) ([]*domain.SalesTarget, error) {
	rows, err := s.Client.GetTargets(ctx)
	if err != nil {
		return nil, err
	}

	targets := make([]*domain.SalesTarget, 0, len(rows))
	for _, row := range rows {
		targets = append(targets, &domain.SalesTarget{
			LocationID:   row.LocationID,
			TargetDate:   row.TargetDate,
			TargetAmount: int64(row.TargetAmount),
		})
	}

	return targets, nil
}

func (s *SalesDataService) SaveTarget(ctx context.Context, target *domain.SalesTarget) error {
	return s.Client.PostTarget(ctx, target)
}

// normalizeRows converts wire rows to domain records. Amounts were already
// coerced to 0 during JSON decoding when malformed; rows whose date cannot
// be parsed are unattributable to any period and are dropped with a warning.
func normalizeRows(rows []salesdatadomain.SalesRow) []domain.SalesRecord {
	records := make([]domain.SalesRecord, 0, len(rows))

	for _, row := range rows {
		date, err := time.Parse(time.DateOnly, row.SalesDate)
		if err != nil {
			log.L.WithFields(log.Fields{
				"row_id":     row.ID,
				"sales_date": row.SalesDate,
			}).Warn("salesdata: dropping row with unparseable sales_date")
			continue
		}

		records = append(records, domain.SalesRecord{
			ID:             row.ID,
			SalesDate:      date,
			Amount:         int64(row.Amount),
			LocationID:     row.LocationID,
			EmployeeNumber: row.EmployeeNumber,
			EmployeeName:   row.EmployeeName,
			SalesChannel:   row.SalesChannel,
			Category:       row.Category,
			Tactics:        row.Tactics,
			Memo:           row.Memo,
		})
	}

	return records
}
