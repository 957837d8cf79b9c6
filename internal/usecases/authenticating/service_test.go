package authenticating

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team6/sales-report-api/internal/config"
	"github.com/team6/sales-report-api/internal/domain"
	"github.com/team6/sales-report-api/internal/usecases/directory"
	directorymocks "github.com/team6/sales-report-api/internal/usecases/directory/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (Authenticator, *directorymocks.MockEmployeeDirectory) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	directoryMock := directorymocks.NewMockEmployeeDirectory(ctrl)
	cfg := &config.Config{
		Auth: config.Auth{
			Secret:          "test-secret",
			TokenTTLMinutes: 60,
		},
	}

	return NewService(directoryMock, cfg), directoryMock
}

func testEmployee(t *testing.T, password string) *domain.Employee {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.Employee{
		EmployeeNumber: 1042,
		EmployeeName:   "佐藤",
		LocationID:     domain.LocationKanto,
		Role:           domain.RoleManager,
		PasswordHash:   string(hash),
	}
}

func TestLogin_IssuesValidToken(t *testing.T) {
	service, directoryMock := newAuthService(t)
	employee := testEmployee(t, "correct horse")

	directoryMock.EXPECT().
		GetByEmployeeNumber(gomock.Any(), 1042).
		Return(employee, nil)

	token, loggedIn, err := service.Login(context.Background(), 1042, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, employee, loggedIn)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1042, claims.EmployeeNumber)
	assert.Equal(t, "佐藤", claims.EmployeeName)
	assert.Equal(t, domain.LocationKanto, claims.LocationID)
	assert.Equal(t, domain.RoleManager, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, directoryMock := newAuthService(t)
	employee := testEmployee(t, "correct horse")

	directoryMock.EXPECT().
		GetByEmployeeNumber(gomock.Any(), 1042).
		Return(employee, nil)

	token, _, err := service.Login(context.Background(), 1042, "battery staple")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_EmployeeNotFound(t *testing.T) {
	service, directoryMock := newAuthService(t)

	directoryMock.EXPECT().
		GetByEmployeeNumber(gomock.Any(), 9999).
		Return(nil, directory.NewDirectoryError(directory.ErrEmployeeNotFound, "", "employee 9999 not found"))

	_, _, err := service.Login(context.Background(), 9999, "whatever")
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestLogin_MissingCredentials(t *testing.T) {
	service, _ := newAuthService(t)

	_, _, err := service.Login(context.Background(), 0, "password")
	assert.ErrorIs(t, err, ErrMissingRequiredData)

	_, _, err = service.Login(context.Background(), 1042, "")
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestValidateToken_Garbage(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service, _ := newAuthService(t)

	claims := domain.Claims{
		EmployeeNumber: 1042,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	service, _ := newAuthService(t)

	claims := domain.Claims{
		EmployeeNumber: 1042,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.ValidateToken(expired)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
