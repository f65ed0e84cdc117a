package dashboard

import (
	"github.com/shopspring/decimal"
)

// AccountantStats - payroll-centric counters for the accountant view.
type AccountantStats struct {
	ActiveTeachers int
	TotalBatches   int
	PendingBatches int
	TotalPaidNet   decimal.Decimal
	LatestBatchID  *string
}

// AdminStats - organization-wide counters for the admin view.
type AdminStats struct {
	TotalUsers     int
	ActiveTeachers int
	TotalBatches   int
	LatestBatchID  *string
}
