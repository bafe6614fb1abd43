package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the daily attendance classification for one employee.
type Status string

const (
	StatusPresent   Status = "present"
	StatusAbsent    Status = "absent"
	StatusLate      Status = "late"
	StatusHalfDay   Status = "half_day"
	StatusLeave     Status = "leave"
	StatusClockedIn Status = "clocked_in"
)

// ValidStatuses returns every status the API accepts in filters.
func ValidStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusLate),
		string(StatusHalfDay),
		string(StatusLeave),
		string(StatusClockedIn),
	}
}

// Record is one attendance row, unique per (employee, company, date).
// ClockIn/ClockOut hold wall-clock times in "HH:mm"; weekly-off stamps
// created by the nightly sweep store "-" in both fields.
type Record struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	Date        time.Time
	ClockIn     *string
	ClockOut    *string
	HoursWorked decimal.Decimal
	Status      Status
	Message     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for list views
	EmployeeName *string
}

// HasClockIn reports whether the record carries a usable clock-in time.
// "-" counts as empty: it is the weekly-off placeholder, not a time.
func (r *Record) HasClockIn() bool {
	return r.ClockIn != nil && *r.ClockIn != "" && *r.ClockIn != "-"
}

// HasClockOut reports whether the record carries a usable clock-out time.
func (r *Record) HasClockOut() bool {
	return r.ClockOut != nil && *r.ClockOut != "" && *r.ClockOut != "-"
}

// Finalized reports whether both times are set. Finalized records are
// terminal for the nightly sweep; only manual admin edits reopen them.
func (r *Record) Finalized() bool {
	return r.HasClockIn() && r.HasClockOut()
}
