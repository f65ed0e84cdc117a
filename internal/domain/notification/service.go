package notification

import (
	"context"
)

type CreateNotificationRequest struct {
	UserID  string
	Title   string
	Message string
}

type Service interface {
	// QueueNotification enqueues a notification for async insertion.
	// Delivery is best-effort; failures are logged, never returned.
	QueueNotification(ctx context.Context, req CreateNotificationRequest)
	QueueBulkNotification(ctx context.Context, reqs []CreateNotificationRequest)
	ListMine(ctx context.Context) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Stop()
}
