package employee

import "context"

// Repository defines data access for the employee directory.
type Repository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// ListActiveByCompany returns non-resigned employees; the nightly
	// sweep reconciles exactly this set.
	ListActiveByCompany(ctx context.Context, companyID string) ([]Employee, error)

	// GetAdminsByCompany returns the employees flagged as company admins,
	// the recipients of clock-in/out notifications.
	GetAdminsByCompany(ctx context.Context, companyID string) ([]Employee, error)
}
