package domain

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued at login. The role and location travel in
// the token so route gating and default branch filtering never need another
// directory lookup.
type Claims struct {
	EmployeeNumber int    `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	LocationID     int    `json:"location_id"`
	Role           int    `json:"employee_role"`
	jwt.RegisteredClaims
}
