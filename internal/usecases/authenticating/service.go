package authenticating

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/internal/usecases/directory"
	"github.com/team6/sales-report-api/pkg/apiErrors"
	"github.com/team6/sales-report-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

type Authenticator interface {
	Login(ctx context.Context, employeeNumber int, password string) (string, *domain.Employee, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	employeeDirectory directory.EmployeeDirectory
	cfg               *config.Config
}

func NewService(employeeDirectory directory.EmployeeDirectory, cfg *config.Config) Authenticator {
	return &Service{
		employeeDirectory: employeeDirectory,
		cfg:               cfg,
	}
}

// Login checks the password against the directory's bcrypt hash and issues a
// signed JWT carrying the employee's role and location.
func (s *Service) Login(ctx context.Context, employeeNumber int, password string) (string, *domain.Employee, error) {
	if employeeNumber <= 0 || password == "" {
		return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"employee number and password are required")
	}

	employee, err := s.employeeDirectory.GetByEmployeeNumber(ctx, employeeNumber)
	if err != nil {
		if directory.IsNotFoundError(err) {
			return "", nil, NewEmployeeAuthError(ErrEmployeeNotFound, apiErrors.ErrEmployeeNotFound,
				employeeNumber, "")
		}
		return "", nil, NewAuthError(err, apiErrors.ErrSalesDataService, "failed to look up employee")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)); err != nil {
		log.ForContext(ctx).WithField("employee_number", employeeNumber).Warn("login with wrong password")
		return "", nil, NewEmployeeAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials,
			employeeNumber, "wrong password")
	}

	token, err := s.generateJWT(employee)
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "failed to sign token")
	}

	return token, employee, nil
}

func (s *Service) generateJWT(employee *domain.Employee) (string, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLMinutes) * time.Minute

	claims := domain.Claims{
		EmployeeNumber: employee.EmployeeNumber,
		EmployeeName:   employee.EmployeeName,
		LocationID:     employee.LocationID,
		Role:           employee.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
