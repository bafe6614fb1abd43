package company

import "context"

// Repository defines data access for companies and their attendance rules.
type Repository interface {
	// List returns every registered company. The nightly sweep iterates
	// this to reconcile each tenant.
	List(ctx context.Context) ([]Company, error)

	GetByID(ctx context.Context, id string) (Company, error)

	// GetRules returns the company's attendance rules, falling back to
	// DefaultAttendanceRules when no row exists.
	GetRules(ctx context.Context, companyID string) (AttendanceRules, error)

	// UpdateRules upserts the company's attendance rules.
	UpdateRules(ctx context.Context, rules AttendanceRules) error
}
