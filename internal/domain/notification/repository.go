package notification

import (
	"context"
)

type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	CountUnread(ctx context.Context, userID string) (int, error)
}
