package payroll

import (
	"context"
)

type PayrollRepository interface {
	GetBatchByPeriod(ctx context.Context, month, year int) (Batch, error)
	GetBatchByID(ctx context.Context, id string) (Batch, error)
	CreateBatch(ctx context.Context, b Batch) (Batch, error)
	// DeleteBatch removes the batch and all of its items.
	DeleteBatch(ctx context.Context, id string) error
	CreateItems(ctx context.Context, items []Item) error
	ListBatches(ctx context.Context) ([]Batch, error)
	// ListBatchesForPeriod filters by optional month/year (nil = any).
	ListBatchesForPeriod(ctx context.Context, month, year *int) ([]Batch, error)
	ListItems(ctx context.Context, batchID string) ([]Item, error)
	GetItemByID(ctx context.Context, id string) (Item, error)
	SetBatchApproved(ctx context.Context, id, approvedBy string) error
	SetBatchStatus(ctx context.Context, id string, status Status) error
	SetItemPaymentStatus(ctx context.Context, id string, status PaymentStatus) error
	CountItemsByPaymentStatus(ctx context.Context, batchID string, status PaymentStatus) (int, error)
	ListRecipients(ctx context.Context, batchID string) ([]Recipient, error)
	// ListItemsForTeacher returns a teacher's items joined with their batch
	// period/status, newest first. approvedOnly limits to approved/paid batches.
	ListItemsForTeacher(ctx context.Context, teacherID string, approvedOnly bool) ([]TeacherItem, error)
	GetItemForTeacher(ctx context.Context, itemID, teacherID string) (Item, error)
}
