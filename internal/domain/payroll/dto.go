package payroll

import (
	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ProcessRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *ProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentStatusRequest struct {
	ItemID        string `json:"-"`
	PaymentStatus string `json:"payment_status"`
}

func (r *PaymentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidPaymentStatus(r.PaymentStatus) {
		errs = append(errs, validator.ValidationError{Field: "payment_status", Message: "must be Paid or Pending"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchResponse struct {
	ID              string          `json:"id"`
	Month           int             `json:"month"`
	Year            int             `json:"year"`
	Status          string          `json:"status"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNet        decimal.Decimal `json:"total_net"`
	ItemCount       int             `json:"item_count"`
	ProcessedByName *string         `json:"processed_by_name,omitempty"`
	ApprovedByName  *string         `json:"approved_by_name,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

func ToBatchResponse(b Batch) BatchResponse {
	return BatchResponse{
		ID:              b.ID,
		Month:           b.Month,
		Year:            b.Year,
		Status:          string(b.Status),
		TotalGross:      b.TotalGross,
		TotalDeductions: b.TotalDeductions,
		TotalNet:        b.TotalNet,
		ItemCount:       b.ItemCount,
		ProcessedByName: b.ProcessedByName,
		ApprovedByName:  b.ApprovedByName,
		CreatedAt:       b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

type ItemResponse struct {
	ID                 string          `json:"id"`
	PayrollID          string          `json:"payroll_id"`
	TeacherID          string          `json:"teacher_id"`
	TeacherName        *string         `json:"teacher_name,omitempty"`
	EmployeeID         *string         `json:"employee_id,omitempty"`
	SalaryScale        *string         `json:"salary_scale,omitempty"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	NSSFAmount         decimal.Decimal `json:"nssf_amount"`
	LoanDeduction      decimal.Decimal `json:"loan_deduction"`
	OtherDeduction     decimal.Decimal `json:"other_deduction"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetSalary          decimal.Decimal `json:"net_salary"`
	PaymentStatus      string          `json:"payment_status"`
}

func ToItemResponse(i Item) ItemResponse {
	return ItemResponse{
		ID:                 i.ID,
		PayrollID:          i.PayrollID,
		TeacherID:          i.TeacherID,
		TeacherName:        i.TeacherName,
		EmployeeID:         i.EmployeeID,
		SalaryScale:        i.SalaryScale,
		BasicSalary:        i.BasicSalary,
		HousingAllowance:   i.HousingAllowance,
		TransportAllowance: i.TransportAllowance,
		MedicalAllowance:   i.MedicalAllowance,
		OtherAllowance:     i.OtherAllowance,
		GrossSalary:        i.GrossSalary,
		TaxAmount:          i.TaxAmount,
		NSSFAmount:         i.NSSFAmount,
		LoanDeduction:      i.LoanDeduction,
		OtherDeduction:     i.OtherDeduction,
		TotalDeductions:    i.TotalDeductions,
		NetSalary:          i.NetSalary,
		PaymentStatus:      string(i.PaymentStatus),
	}
}

type TeacherItemResponse struct {
	ItemResponse
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	BatchStatus string `json:"batch_status"`
}

func ToTeacherItemResponse(ti TeacherItem) TeacherItemResponse {
	return TeacherItemResponse{
		ItemResponse: ToItemResponse(ti.Item),
		Month:        ti.Month,
		Year:         ti.Year,
		BatchStatus:  string(ti.BatchStatus),
	}
}
