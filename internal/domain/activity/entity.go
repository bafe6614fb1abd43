package activity

import "time"

// Entry is one row in the company activity log, written whenever an
// employee clocks in or out.
type Entry struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Action     Action
	Message    string
	CreatedAt  time.Time
}

type Action string

const (
	ActionClockIn    Action = "clock_in"
	ActionClockOut   Action = "clock_out"
	ActionManualEdit Action = "manual_edit"
)
