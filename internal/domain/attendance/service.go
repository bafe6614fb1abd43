package attendance

import "context"

// Service defines business logic for attendance operations.
type Service interface {
	// ClockIn opens today's record for an employee. Rejects a second
	// clock-in on the same day.
	ClockIn(ctx context.Context, req ClockInRequest) (RecordResponse, error)

	// ClockOut closes today's record and classifies the day. Requires a
	// prior clock-in and rejects a second clock-out.
	ClockOut(ctx context.Context, req ClockOutRequest) (RecordResponse, error)

	// ManualEdit lets an admin set either clock time on any day; hours
	// and status are recomputed from the new times.
	ManualEdit(ctx context.Context, req ManualEditRequest) (RecordResponse, error)

	// GetToday returns the caller's record for today, or nil.
	GetToday(ctx context.Context, employeeID, companyID string) (*RecordResponse, error)

	// Get retrieves a single record by id (admin view).
	Get(ctx context.Context, id, companyID string) (RecordResponse, error)

	// List retrieves records with filters (admin view).
	List(ctx context.Context, filter Filter, companyID string) (ListResponse, error)
}
