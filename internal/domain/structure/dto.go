package structure

import (
	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SaveStructureRequest upserts a structure by scale name.
type SaveStructureRequest struct {
	SalaryScale        string          `json:"salary_scale"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
	NSSFPercentage     decimal.Decimal `json:"nssf_percentage"`
	LoanDeduction      decimal.Decimal `json:"loan_deduction"`
	OtherDeduction     decimal.Decimal `json:"other_deduction"`
}

func (r *SaveStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SalaryScale) {
		errs = append(errs, validator.ValidationError{Field: "salary_scale", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	amounts := map[string]decimal.Decimal{
		"housing_allowance":   r.HousingAllowance,
		"transport_allowance": r.TransportAllowance,
		"medical_allowance":   r.MedicalAllowance,
		"other_allowance":     r.OtherAllowance,
		"loan_deduction":      r.LoanDeduction,
		"other_deduction":     r.OtherDeduction,
	}
	for field, amount := range amounts {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}
	hundred := decimal.NewFromInt(100)
	if r.TaxPercentage.IsNegative() || r.TaxPercentage.GreaterThan(hundred) {
		errs = append(errs, validator.ValidationError{Field: "tax_percentage", Message: "must be between 0 and 100"})
	}
	if r.NSSFPercentage.IsNegative() || r.NSSFPercentage.GreaterThan(hundred) {
		errs = append(errs, validator.ValidationError{Field: "nssf_percentage", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StructureResponse struct {
	ID                 string          `json:"id"`
	SalaryScale        string          `json:"salary_scale"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowance     decimal.Decimal `json:"other_allowance"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
	NSSFPercentage     decimal.Decimal `json:"nssf_percentage"`
	LoanDeduction      decimal.Decimal `json:"loan_deduction"`
	OtherDeduction     decimal.Decimal `json:"other_deduction"`
}

func ToStructureResponse(s SalaryStructure) StructureResponse {
	return StructureResponse{
		ID:                 s.ID,
		SalaryScale:        s.SalaryScale,
		BasicSalary:        s.BasicSalary,
		HousingAllowance:   s.HousingAllowance,
		TransportAllowance: s.TransportAllowance,
		MedicalAllowance:   s.MedicalAllowance,
		OtherAllowance:     s.OtherAllowance,
		TaxPercentage:      s.TaxPercentage,
		NSSFPercentage:     s.NSSFPercentage,
		LoanDeduction:      s.LoanDeduction,
		OtherDeduction:     s.OtherDeduction,
	}
}
