package salesclient

import (
	"context"
	"net/url"
	"strconv"

	salesdatadomain "github.com/team6/sales-report-api/infrastructure/integrator/salesdata/domain"
	"github.com/team6/sales-report-api/internal/domain"
)

func (c *SalesDataClient) GetEmployees(ctx context.Context) ([]salesdatadomain.EmployeeRow, error) {
	var rows []salesdatadomain.EmployeeRow
	if err := c.getJSON(ctx, "get_employee", nil, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

func (c *SalesDataClient) AddEmployee(ctx context.Context, employee *domain.NewEmployee) error {
	query := url.Values{}
	query.Set("employee_number", strconv.Itoa(employee.EmployeeNumber))
	query.Set("employee_name", employee.EmployeeName)
	query.Set("location_id", strconv.Itoa(employee.LocationID))
	query.Set("employee_role", strconv.Itoa(employee.Role))
	query.Set("employee_password", employee.Password)
	if employee.Email != "" {
		query.Set("employee_address", employee.Email)
	}

	return c.postParams(ctx, "add_employee", query)
}

func (c *SalesDataClient) UpdateEmployeeRole(ctx context.Context, employeeNumber, role int) error {
	query := url.Values{}
	query.Set("employee_number", strconv.Itoa(employeeNumber))
	query.Set("employee_role", strconv.Itoa(role))

	return c.postParams(ctx, "edit_employee_role", query)
}

func (c *SalesDataClient) UpdateEmployeeName(ctx context.Context, employeeNumber int, name string) error {
	query := url.Values{}
	query.Set("employee_number", strconv.Itoa(employeeNumber))
	query.Set("new_employee_name", name)

	return c.postParams(ctx, "update_employee_name", query)
}

func (c *SalesDataClient) DeleteEmployee(ctx context.Context, employeeNumber int) error {
	query := url.Values{}
	query.Set("employee_number", strconv.Itoa(employeeNumber))

	return c.postParams(ctx, "delete_employee", query)
}
