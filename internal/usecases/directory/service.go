package directory

import (
	"context"

	"github.com/team6/sales-report-api/infrastructure/integrator/salesdata"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/pkg/apiErrors"
	"github.com/team6/sales-report-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeDirectory manages the employee records held by the sales data
// service: list, lookup, registration and role/name maintenance.
type EmployeeDirectory interface {
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
	GetByEmployeeNumber(ctx context.Context, employeeNumber int) (*domain.Employee, error)
	AddEmployee(ctx context.Context, employee *domain.NewEmployee) error
	UpdateEmployeeRole(ctx context.Context, employeeNumber, role int) error
	UpdateEmployeeName(ctx context.Context, employeeNumber int, name string) error
	DeleteEmployee(ctx context.Context, employeeNumber int) error
}

type Service struct {
	cfg          *config.Config
	salesService salesdata.SalesDataIntegrator
}

func NewService(cfg *config.Config, salesService salesdata.SalesDataIntegrator) EmployeeDirectory {
	return &Service{
		cfg:          cfg,
		salesService: salesService,
	}
}

func (s *Service) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return s.salesService.ListEmployees(ctx)
}

// GetByEmployeeNumber scans the directory for one entry. The external API
// has no per-number lookup route, so this goes through the full list.
func (s *Service) GetByEmployeeNumber(ctx context.Context, employeeNumber int) (*domain.Employee, error) {
	employees, err := s.salesService.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	for _, employee := range employees {
		if employee.EmployeeNumber == employeeNumber {
			return employee, nil
		}
	}

	return nil, NewDirectoryError(ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound, "")
}

func (s *Service) AddEmployee(ctx context.Context, employee *domain.NewEmployee) error {
	if employee.EmployeeNumber <= 0 || employee.EmployeeName == "" || employee.Password == "" {
		return NewDirectoryError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"employee number, name and password are required")
	}

	if !domain.ValidRole(employee.Role) {
		return NewDirectoryError(ErrInvalidRole, apiErrors.ErrInvalidFormat, "unknown role")
	}

	if !domain.ValidLocationID(employee.LocationID) {
		return NewDirectoryError(ErrInvalidLocation, apiErrors.ErrInvalidFormat, "unknown location")
	}

	if existing, err := s.findByNumber(ctx, employee.EmployeeNumber); err != nil {
		return err
	} else if existing != nil {
		return NewDirectoryError(ErrEmployeeAlreadyExists, apiErrors.ErrEmployeeAlreadyExists, "")
	}

	// The directory stores bcrypt hashes, never the raw password.
	hashed, err := bcrypt.GenerateFromPassword([]byte(employee.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	employee.Password = string(hashed)

	if err := s.salesService.AddEmployee(ctx, employee); err != nil {
		log.ForContext(ctx).WithError(err).WithField("employee_number", employee.EmployeeNumber).
			Error("failed to add employee")
		return err
	}

	return nil
}

func (s *Service) UpdateEmployeeRole(ctx context.Context, employeeNumber, role int) error {
	if !domain.ValidRole(role) {
		return NewDirectoryError(ErrInvalidRole, apiErrors.ErrInvalidFormat, "unknown role")
	}

	if _, err := s.GetByEmployeeNumber(ctx, employeeNumber); err != nil {
		return err
	}

	return s.salesService.UpdateEmployeeRole(ctx, employeeNumber, role)
}

func (s *Service) UpdateEmployeeName(ctx context.Context, employeeNumber int, name string) error {
	if name == "" {
		return NewDirectoryError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"employee name is required")
	}

	if _, err := s.GetByEmployeeNumber(ctx, employeeNumber); err != nil {
		return err
	}

	return s.salesService.UpdateEmployeeName(ctx, employeeNumber, name)
}

func (s *Service) DeleteEmployee(ctx context.Context, employeeNumber int) error {
	if _, err := s.GetByEmployeeNumber(ctx, employeeNumber); err != nil {
		return err
	}

	return s.salesService.DeleteEmployee(ctx, employeeNumber)
}

// findByNumber is GetByEmployeeNumber without the not-found error, for
// existence checks.
func (s *Service) findByNumber(ctx context.Context, employeeNumber int) (*domain.Employee, error) {
	employees, err := s.salesService.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	for _, employee := range employees {
		if employee.EmployeeNumber == employeeNumber {
			return employee, nil
		}
	}

	return nil, nil
}
