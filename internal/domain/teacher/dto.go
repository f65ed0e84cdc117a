package teacher

import (
	"time"

	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
)

type CreateTeacherRequest struct {
	FullName    string  `json:"full_name"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Position    *string `json:"position,omitempty"`
	SalaryScale string  `json:"salary_scale"`
	DateJoined  *string `json:"date_joined,omitempty"`
}

func (r *CreateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.DateJoined != nil && *r.DateJoined != "" {
		if _, ok := validator.IsValidDate(*r.DateJoined); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_joined", Message: "must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTeacherRequest struct {
	ID          string  `json:"-"`
	FullName    *string `json:"full_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Position    *string `json:"position,omitempty"`
	SalaryScale *string `json:"salary_scale,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateTeacherRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "cannot be empty"})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}
	if r.SalaryScale != nil && validator.IsEmpty(*r.SalaryScale) {
		errs = append(errs, validator.ValidationError{Field: "salary_scale", Message: "cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest is the teacher self-service subset.
type UpdateProfileRequest struct {
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CompensationResponse is the accountant's roster view: teacher plus the
// components of their current scale.
type CompensationResponse struct {
	TeacherID          string `json:"teacher_id"`
	EmployeeID         string `json:"employee_id"`
	FullName           string `json:"full_name"`
	SalaryScale        string `json:"salary_scale"`
	BasicSalary        string `json:"basic_salary"`
	HousingAllowance   string `json:"housing_allowance"`
	TransportAllowance string `json:"transport_allowance"`
	MedicalAllowance   string `json:"medical_allowance"`
	OtherAllowance     string `json:"other_allowance"`
	TaxPercentage      string `json:"tax_percentage"`
	NSSFPercentage     string `json:"nssf_percentage"`
	LoanDeduction      string `json:"loan_deduction"`
	OtherDeduction     string `json:"other_deduction"`
}

func ToCompensationResponse(c Compensation) CompensationResponse {
	return CompensationResponse{
		TeacherID:          c.TeacherID,
		EmployeeID:         c.EmployeeID,
		FullName:           c.FullName,
		SalaryScale:        c.SalaryScale,
		BasicSalary:        c.BasicSalary.String(),
		HousingAllowance:   c.HousingAllowance.String(),
		TransportAllowance: c.TransportAllowance.String(),
		MedicalAllowance:   c.MedicalAllowance.String(),
		OtherAllowance:     c.OtherAllowance.String(),
		TaxPercentage:      c.TaxPercentage.String(),
		NSSFPercentage:     c.NSSFPercentage.String(),
		LoanDeduction:      c.LoanDeduction.String(),
		OtherDeduction:     c.OtherDeduction.String(),
	}
}

type TeacherResponse struct {
	ID          string  `json:"id"`
	UserID      *string `json:"user_id,omitempty"`
	EmployeeID  string  `json:"employee_id"`
	FullName    string  `json:"full_name"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Position    *string `json:"position,omitempty"`
	SalaryScale string  `json:"salary_scale"`
	DateJoined  *string `json:"date_joined,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// CreateTeacherResponse includes the provisioned login credentials.
type CreateTeacherResponse struct {
	Teacher         TeacherResponse `json:"teacher"`
	Username        string          `json:"username"`
	DefaultPassword string          `json:"default_password"`
}

func ToTeacherResponse(t Teacher) TeacherResponse {
	resp := TeacherResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		EmployeeID:  t.EmployeeID,
		FullName:    t.FullName,
		Email:       t.Email,
		Phone:       t.Phone,
		Position:    t.Position,
		SalaryScale: t.SalaryScale,
		IsActive:    t.IsActive,
	}
	if t.DateJoined != nil {
		d := t.DateJoined.Format(time.DateOnly)
		resp.DateJoined = &d
	}
	return resp
}
