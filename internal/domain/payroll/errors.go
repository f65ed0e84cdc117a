package payroll

import "errors"

var (
	ErrPayrollNotFound        = errors.New("payroll batch not found")
	ErrPayrollItemNotFound    = errors.New("payroll item not found")
	ErrPayrollLocked          = errors.New("payroll for this period is already approved or paid")
	ErrPayrollAlreadyApproved = errors.New("payroll batch is already approved")
	ErrNoActiveTeachers       = errors.New("no active teachers to process")
	ErrInvalidPaymentStatus   = errors.New("payment status must be Paid or Pending")
	ErrPeriodConflict         = errors.New("payroll for this period is being processed")
)
