package structure

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure defines the pay components for one salary scale.
// Percentages apply to basic salary only.
type SalaryStructure struct {
	ID                 string
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
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
