package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
// All methods take companyID to prevent cross-company data access.
type Repository interface {
	// Create inserts a new record. The (employee_id, company_id, date)
	// uniqueness constraint rejects duplicate rows for the same day.
	Create(ctx context.Context, record Record) (Record, error)

	// FindByEmployeeAndDate returns the record for one employee on one
	// calendar day, or nil when none exists.
	FindByEmployeeAndDate(ctx context.Context, employeeID, companyID string, date time.Time) (*Record, error)

	// Update rewrites the mutable fields of an existing record.
	Update(ctx context.Context, record Record) error

	// Upsert inserts or, on the identity conflict, updates the record.
	// Used by manual admin edits which may target days with no row yet.
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record by ID with company isolation.
	GetByID(ctx context.Context, id string, companyID string) (Record, error)

	// List retrieves records with filters and pagination.
	List(ctx context.Context, filter Filter, companyID string) ([]Record, int64, error)
}
