package notification

import "context"

type Repository interface {
	// CreateBatch inserts a batch of notifications in one round trip.
	CreateBatch(ctx context.Context, notifications []*Notification) error

	ListByRecipient(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]*Notification, int64, error)
	CountUnread(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, recipientID string, notificationIDs []string) error
}
