package directory

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee already exists")
	ErrMissingRequiredData   = errors.New("missing required data")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidLocation       = errors.New("invalid location")
)

// DirectoryError carries the API error code alongside the base error.
type DirectoryError struct {
	Err            error
	Code           string
	EmployeeNumber int
	Details        string
}

func (e *DirectoryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

func NewDirectoryError(baseErr error, code string, details string) *DirectoryError {
	return &DirectoryError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsNotFoundError reports whether err means the employee does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrEmployeeNotFound)
}

// IsValidationError reports whether err comes from request validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingRequiredData) ||
		errors.Is(err, ErrInvalidRole) ||
		errors.Is(err, ErrInvalidLocation)
}
