package dashboard

import (
	"github.com/edupay/edupay-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

type AccountantStatsResponse struct {
	ActiveTeachers int                    `json:"active_teachers"`
	TotalBatches   int                    `json:"total_batches"`
	PendingBatches int                    `json:"pending_batches"`
	TotalPaidNet   decimal.Decimal        `json:"total_paid_net"`
	LatestBatch    *payroll.BatchResponse `json:"latest_batch,omitempty"`
}

type AdminStatsResponse struct {
	TotalUsers     int                    `json:"total_users"`
	ActiveTeachers int                    `json:"active_teachers"`
	TotalBatches   int                    `json:"total_batches"`
	LatestBatch    *payroll.BatchResponse `json:"latest_batch,omitempty"`
}
