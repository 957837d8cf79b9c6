package domain

// Employee roles as stored by the sales data service.
const (
	RoleStaff   = 0 // branch employee, submits daily reports
	RoleManager = 1 // views dashboards
	RoleAdmin   = 2 // IT staff, manages the directory
)

// Employee is a directory entry served by the sales data service. The
// password hash never leaves the API layer; it is stripped before responses.
type Employee struct {
	EmployeeNumber int    `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	LocationID     int    `json:"location_id"`
	Role           int    `json:"employee_role"`
	Email          string `json:"employee_address,omitempty"`
	PasswordHash   string `json:"-"`
}

// NewEmployee is the payload for registering a directory entry.
type NewEmployee struct {
	EmployeeNumber int    `json:"employee_number"`
	EmployeeName   string `json:"employee_name"`
	LocationID     int    `json:"location_id"`
	Role           int    `json:"employee_role"`
	Email          string `json:"employee_address,omitempty"`
	Password       string `json:"employee_password"`
}

func ValidRole(role int) bool {
	return role == RoleStaff || role == RoleManager || role == RoleAdmin
}
