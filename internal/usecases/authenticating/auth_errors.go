package authenticating

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrInvalidToken          = errors.New("invalid token")
	ErrExpiredToken          = errors.New("expired token")
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
	ErrMissingRequiredData   = errors.New("missing required data")
)

// AuthError pairs a base error with the API error code the handler should
// surface.
type AuthError struct {
	Err            error
	Code           string
	EmployeeNumber int
	Details        string
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

func NewEmployeeAuthError(baseErr error, code string, employeeNumber int, details string) *AuthError {
	return &AuthError{
		Err:            baseErr,
		Code:           code,
		EmployeeNumber: employeeNumber,
		Details:        details,
	}
}

// IsCredentialsError reports whether err means the login itself failed.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrEmployeeNotFound)
}

// IsAuthorizationError reports whether err comes from token validation or
// privilege checks.
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrInsufficientPrivilege)
}
