package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Full administration access
	RoleAccountant Role = "accountant" // Runs and approves payroll
	RoleTeacher    Role = "teacher"    // Sees own payslips only
)

func ValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RoleAccountant, RoleTeacher:
		return true
	}
	return false
}

type User struct {
	ID                 string
	Username           string
	PasswordHash       string
	Role               Role
	FullName           string
	Email              *string
	Phone              *string
	IsActive           bool
	MustChangePassword bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanRunPayroll checks if user can process payroll
func (u *User) CanRunPayroll() bool {
	return u.Role == RoleAccountant || u.Role == RoleAdmin
}
