package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/internal/usecases/directory"
	"github.com/team6/sales-report-api/pkg/apiErrors"
	"github.com/team6/sales-report-api/pkg/log"
)

type UpdateRoleRequest struct {
	Role int `json:"employee_role"`
}

type UpdateNameRequest struct {
	Name string `json:"employee_name"`
}

func ListEmployees(service directory.EmployeeDirectory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employees, err := service.ListEmployees(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("directory: failed to list employees")
			apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "failed to list employees", nil)
			return
		}

		writeJSON(w, map[string]any{
			"items": employees,
			"total": len(employees),
		})
	})
}

func AddEmployee(service directory.EmployeeDirectory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.NewEmployee
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.AddEmployee(r.Context(), &req); err != nil {
			handleDirectoryError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("employee_number", req.EmployeeNumber).
			Info("directory: employee registered")

		w.WriteHeader(http.StatusCreated)
		writeJSON(w, map[string]string{"message": "employee registered"})
	})
}

func UpdateEmployeeRole(service directory.EmployeeDirectory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		number, ok := employeeNumberParam(w, r)
		if !ok {
			return
		}

		var req UpdateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.UpdateEmployeeRole(r.Context(), number, req.Role); err != nil {
			handleDirectoryError(w, r, err)
			return
		}

		writeJSON(w, map[string]string{"message": "role updated"})
	})
}

func UpdateEmployeeName(service directory.EmployeeDirectory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		number, ok := employeeNumberParam(w, r)
		if !ok {
			return
		}

		var req UpdateNameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if err := service.UpdateEmployeeName(r.Context(), number, req.Name); err != nil {
			handleDirectoryError(w, r, err)
			return
		}

		writeJSON(w, map[string]string{"message": "name updated"})
	})
}

func DeleteEmployee(service directory.EmployeeDirectory) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		number, ok := employeeNumberParam(w, r)
		if !ok {
			return
		}

		if err := service.DeleteEmployee(r.Context(), number); err != nil {
			handleDirectoryError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("employee_number", number).
			Info("directory: employee deleted")

		writeJSON(w, map[string]string{"message": "employee deleted"})
	})
}

func employeeNumberParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("number")
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "employee number must be a positive integer", nil)
		return 0, false
	}
	return number, true
}

func handleDirectoryError(w http.ResponseWriter, r *http.Request, err error) {
	var dirErr *directory.DirectoryError
	if errors.As(err, &dirErr) {
		apiErrors.WriteError(w, dirErr.Code, dirErr.Error(), nil)
		return
	}

	switch {
	case directory.IsNotFoundError(err):
		apiErrors.WriteError(w, apiErrors.ErrEmployeeNotFound, "employee not found", nil)

	case directory.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		log.ForContext(r.Context()).WithError(err).Error("directory: operation failed")
		apiErrors.WriteError(w, apiErrors.ErrSalesDataService, "directory operation failed", nil)
	}
}
