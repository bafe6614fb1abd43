package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// CreateBatch implements notification.Repository using a pgx batch so the
// worker flush costs one round trip.
func (n *notificationRepository) CreateBatch(ctx context.Context, notifications []*notification.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	query := `
		INSERT INTO notifications (id, company_id, recipient_id, sender_id, type, title, message, data, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	batch := &pgx.Batch{}
	for _, notif := range notifications {
		data, err := json.Marshal(notif.Data)
		if err != nil {
			return fmt.Errorf("failed to marshal notification data: %w", err)
		}
		batch.Queue(query,
			notif.ID, notif.CompanyID, notif.RecipientID, notif.SenderID,
			notif.Type, notif.Title, notif.Message, data, notif.IsRead, notif.CreatedAt,
		)
	}

	results := n.db.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert notification batch: %w", err)
		}
	}

	return nil
}

// ListByRecipient implements notification.Repository.
func (n *notificationRepository) ListByRecipient(ctx context.Context, recipientID string, page, limit int, unreadOnly bool) ([]*notification.Notification, int64, error) {
	q := GetQuerier(ctx, n.db)

	where := "recipient_id = $1"
	if unreadOnly {
		where += " AND is_read = FALSE"
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM notifications WHERE "+where, recipientID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, company_id, recipient_id, sender_id, type, title, message, data, is_read, read_at, created_at
		FROM notifications
		WHERE ` + where + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, recipientID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var notif notification.Notification
		var data []byte
		err := rows.Scan(
			&notif.ID, &notif.CompanyID, &notif.RecipientID, &notif.SenderID,
			&notif.Type, &notif.Title, &notif.Message, &data, &notif.IsRead, &notif.ReadAt, &notif.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &notif.Data); err != nil {
				return nil, 0, fmt.Errorf("failed to unmarshal notification data: %w", err)
			}
		}
		notifications = append(notifications, &notif)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, total, nil
}

// CountUnread implements notification.Repository.
func (n *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int, error) {
	q := GetQuerier(ctx, n.db)

	var count int
	err := q.QueryRow(ctx, "SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE", recipientID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead implements notification.Repository.
func (n *notificationRepository) MarkRead(ctx context.Context, recipientID string, notificationIDs []string) error {
	q := GetQuerier(ctx, n.db)

	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE recipient_id = $1
		  AND id = ANY($2)
	`

	if _, err := q.Exec(ctx, query, recipientID, notificationIDs); err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
