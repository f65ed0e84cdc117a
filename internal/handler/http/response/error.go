package response

import (
	"errors"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/notification"
	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/edupay/edupay-backend-go/internal/domain/structure"
	"github.com/edupay/edupay-backend-go/internal/domain/sysconfig"
	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"github.com/edupay/edupay-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User / auth domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, user.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrSelfDelete):
		BadRequest(w, "Cannot delete your own account", nil)
	case errors.Is(err, user.ErrSelfDeactivate):
		BadRequest(w, "Cannot deactivate your own account", nil)

	// Teacher domain errors
	case errors.Is(err, teacher.ErrTeacherNotFound):
		NotFound(w, "Teacher not found")
	case errors.Is(err, teacher.ErrEmployeeIDTaken):
		Conflict(w, "Employee ID already exists")

	// Salary structure errors
	case errors.Is(err, structure.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, structure.ErrScaleExists):
		Conflict(w, "Salary scale already exists")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll batch not found")
	case errors.Is(err, payroll.ErrPayrollItemNotFound):
		NotFound(w, "Payroll item not found")
	case errors.Is(err, payroll.ErrPayrollLocked):
		Conflict(w, "Payroll for this period is already approved or paid")
	case errors.Is(err, payroll.ErrPayrollAlreadyApproved):
		Conflict(w, "Payroll batch is already approved")
	case errors.Is(err, payroll.ErrPeriodConflict):
		Conflict(w, "Payroll for this period is being processed")
	case errors.Is(err, payroll.ErrNoActiveTeachers):
		BadRequest(w, "No active teachers to process", nil)
	case errors.Is(err, payroll.ErrInvalidPaymentStatus):
		BadRequest(w, "Payment status must be Paid or Pending", nil)

	// Notification errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// System config errors
	case errors.Is(err, sysconfig.ErrConfigKeyNotFound):
		NotFound(w, "Config key not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
