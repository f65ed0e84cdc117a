package payroll

import (
	"context"
)

type PayrollService interface {
	// Process builds (or rebuilds) the batch for a period from the current
	// active-teacher roster and salary structures.
	Process(ctx context.Context, req ProcessRequest) (BatchResponse, error)
	Approve(ctx context.Context, batchID string) (BatchResponse, error)
	SetItemPaymentStatus(ctx context.Context, req PaymentStatusRequest) (ItemResponse, error)
	ListBatches(ctx context.Context) ([]BatchResponse, error)
	ListItems(ctx context.Context, batchID string) ([]ItemResponse, error)
	MonthlyReport(ctx context.Context, month, year *int) ([]BatchResponse, error)
}
