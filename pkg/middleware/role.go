package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/pkg/apiErrors"
)

// RoleMiddleware restricts access to callers whose role is in allowedRoles.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyEmployee).(*domain.Claims)

			if !ok {
				logrus.Warning("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "not authenticated", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if claims.Role == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("access denied for employee=%d role=%d", claims.EmployeeNumber, claims.Role)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you do not have permission to access this resource", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly allows only IT administrators.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleAdmin})
}

// ManagerOrAdmin allows managers and IT administrators, the dashboard
// audience.
func ManagerOrAdmin() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleManager, domain.RoleAdmin})
}

// AllRoles allows every authenticated employee.
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{domain.RoleStaff, domain.RoleManager, domain.RoleAdmin})
}
