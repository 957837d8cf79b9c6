package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/team6/sales-report-api/internal/usecases/authenticating"
	"github.com/team6/sales-report-api/pkg/apiErrors"
	"github.com/team6/sales-report-api/pkg/log"
)

type LoginRequest struct {
	EmployeeNumber int    `json:"employee_number"`
	Password       string `json:"password"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		token, employee, err := service.Login(r.Context(), req.EmployeeNumber, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		log.ForContext(r.Context()).WithField("employee_number", employee.EmployeeNumber).
			Info("auth: login succeeded")

		writeJSON(w, map[string]any{
			"token":    token,
			"employee": employee,
		})
	})
}

// GetMe echoes the claims of the authenticated employee.
func GetMe() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := employeeClaims(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
			return
		}

		writeJSON(w, claims)
	})
}

func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "invalid credentials", nil)

	case errors.Is(err, authenticating.ErrEmployeeNotFound):
		apiErrors.WriteError(w, apiErrors.ErrEmployeeNotFound, "employee not found", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "login failed", nil)
	}
}
