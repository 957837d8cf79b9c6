package handler

import (
	"net/http"

	"github.com/team6/sales-report-api/internal/api/handler/router"
	"github.com/team6/sales-report-api/internal/usecases/authenticating"
	"github.com/team6/sales-report-api/internal/usecases/directory"
	"github.com/team6/sales-report-api/internal/usecases/reporting"
	"github.com/team6/sales-report-api/internal/usecases/targeting"
	"github.com/team6/sales-report-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sales(service reporting.SalesReporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     GetSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     SubmitSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/table",
			Method:      http.MethodGet,
			Handler:     SalesTable(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sales/export",
			Method:      http.MethodGet,
			Handler:     ExportSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
	}
}

func Dashboard(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     DashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/series",
			Method:      http.MethodGet,
			Handler:     RevenueSeries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/breakdown",
			Method:      http.MethodGet,
			Handler:     Breakdown(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/dashboard/comparison",
			Method:      http.MethodGet,
			Handler:     PeriodComparison(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
	}
}

func Employees(service directory.EmployeeDirectory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/employees",
			Method:      http.MethodGet,
			Handler:     ListEmployees(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees",
			Method:      http.MethodPost,
			Handler:     AddEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees/:number/role",
			Method:      http.MethodPut,
			Handler:     UpdateEmployeeRole(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees/:number/name",
			Method:      http.MethodPut,
			Handler:     UpdateEmployeeName(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/employees/:number",
			Method:      http.MethodDelete,
			Handler:     DeleteEmployee(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Targets(service targeting.Targeter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/targets",
			Method:      http.MethodGet,
			Handler:     ListTargets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
		{
			Path:        "/v1/targets",
			Method:      http.MethodPost,
			Handler:     SaveTarget(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManagerOrAdmin()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
