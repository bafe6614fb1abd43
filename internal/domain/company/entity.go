package company

import "time"

type Company struct {
	ID        string
	Name      string
	Username  string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttendanceRules holds the per-company thresholds the evaluator and the
// nightly sweep classify against. Owned by the company; the engine only
// reads them.
type AttendanceRules struct {
	CompanyID    string
	ClockInTime  string // expected start, "HH:mm"
	FullDayHours int
	HalfDayHours int
	UpdatedAt    time.Time
}

const (
	DefaultClockInTime  = "09:00"
	DefaultFullDayHours = 8
	DefaultHalfDayHours = 4
)

// DefaultAttendanceRules returns the documented defaults, used when a
// company never configured its own thresholds.
func DefaultAttendanceRules(companyID string) AttendanceRules {
	return AttendanceRules{
		CompanyID:    companyID,
		ClockInTime:  DefaultClockInTime,
		FullDayHours: DefaultFullDayHours,
		HalfDayHours: DefaultHalfDayHours,
	}
}
