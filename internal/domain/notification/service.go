package notification

import "context"

// Service defines the notification service interface
type Service interface {
	// QueueNotification enqueues a notification for async persistence
	// and push. Never blocks the caller; drops on a full queue.
	QueueNotification(ctx context.Context, req CreateNotificationRequest) error

	GetNotifications(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) (*ListResponse, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAsRead(ctx context.Context, recipientID string, req MarkAsReadRequest) error

	// Subscribe registers an SSE subscription for a recipient; the
	// returned func tears it down.
	Subscribe(ctx context.Context, recipientID string) (<-chan SSEEvent, func())

	// Stop flushes pending batches and stops the workers.
	Stop()
}
