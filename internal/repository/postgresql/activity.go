package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/activity"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/database"
)

type activityRepository struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.Repository {
	return &activityRepository{db: db}
}

// Insert implements activity.Repository.
func (a *activityRepository) Insert(ctx context.Context, entry activity.Entry) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO activity_logs (company_id, employee_id, action, message)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := q.Exec(ctx, query, entry.CompanyID, entry.EmployeeID, entry.Action, entry.Message); err != nil {
		return fmt.Errorf("failed to insert activity entry: %w", err)
	}

	return nil
}

// ListByCompany implements activity.Repository.
func (a *activityRepository) ListByCompany(ctx context.Context, companyID string, limit int) ([]activity.Entry, error) {
	q := GetQuerier(ctx, a.db)

	if limit <= 0 || limit > 200 {
		limit = 50
	}

	query := `
		SELECT id, company_id, employee_id, action, message, created_at
		FROM activity_logs
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		if err := rows.Scan(&entry.ID, &entry.CompanyID, &entry.EmployeeID, &entry.Action, &entry.Message, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity entries: %w", err)
	}

	return entries, nil
}
