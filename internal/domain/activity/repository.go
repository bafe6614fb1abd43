package activity

import "context"

type Repository interface {
	Insert(ctx context.Context, entry Entry) error

	// ListByCompany returns the most recent entries, newest first.
	ListByCompany(ctx context.Context, companyID string, limit int) ([]Entry, error)
}
