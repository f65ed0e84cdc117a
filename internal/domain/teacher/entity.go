package teacher

import (
	"time"

	"github.com/shopspring/decimal"
)

type Teacher struct {
	ID          string
	UserID      *string
	EmployeeID  string
	FullName    string
	Email       *string
	Phone       *string
	Position    *string
	SalaryScale string
	DateJoined  *time.Time
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Compensation is one active teacher joined with the components of their
// salary scale. Teachers whose scale has no structure row carry zeros.
type Compensation struct {
	TeacherID          string
	UserID             *string
	EmployeeID         string
	FullName           string
	SalaryScale        string
	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowance     decimal.Decimal
	TaxPercentage      decimal.Decimal
	NSSFPercentage     decimal.Decimal
	LoanDeduction      decimal.Decimal
	OtherDeduction     decimal.Decimal
}
