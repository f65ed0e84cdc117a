package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum for a payroll batch. Forward-only:
// draft -> processed -> approved -> paid.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusProcessed Status = "processed"
	StatusApproved  Status = "approved"
	StatusPaid      Status = "paid"
)

// Terminal reports whether the batch can no longer be replaced.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusPaid
}

// PaymentStatus enum for a single line item.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func ValidPaymentStatus(s string) bool {
	return PaymentStatus(s) == PaymentPending || PaymentStatus(s) == PaymentPaid
}

// Batch - one payroll run for a (month, year) period
type Batch struct {
	ID              string
	Month           int
	Year            int
	Status          Status
	TotalGross      decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNet        decimal.Decimal
	ProcessedBy     *string
	ApprovedBy      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	ItemCount       int
	ProcessedByName *string
	ApprovedByName  *string
}

// Item - the frozen pay snapshot of one teacher inside a batch.
// Values are copied from the salary structure at process time and never
// re-read afterwards.
type Item struct {
	ID                 string
	PayrollID          string
	TeacherID          string
	BasicSalary        decimal.Decimal
	HousingAllowance   decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowance     decimal.Decimal
	GrossSalary        decimal.Decimal
	TaxAmount          decimal.Decimal
	NSSFAmount         decimal.Decimal
	LoanDeduction      decimal.Decimal
	OtherDeduction     decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetSalary          decimal.Decimal
	PaymentStatus      PaymentStatus
	CreatedAt          time.Time

	// Joined fields
	TeacherName *string
	EmployeeID  *string
	SalaryScale *string
}

// TeacherItem - one item joined with its batch period, for the
// self-service payslip and salary history views.
type TeacherItem struct {
	Item
	Month       int
	Year        int
	BatchStatus Status
}

// Recipient - the notification target for one item.
type Recipient struct {
	ItemID      string
	TeacherID   string
	UserID      *string
	TeacherName string
	NetSalary   decimal.Decimal
}
