package attendance

import (
	"fmt"
	"time"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/shopspring/decimal"
)

// ClockLayout is the wall-clock format attendance times are stored in.
const ClockLayout = "15:04"

var sixty = decimal.NewFromInt(60)

// blankTime treats "" and the weekly-off placeholder "-" as no time.
func blankTime(s string) bool {
	return s == "" || s == "-"
}

// parseClockMinutes converts "HH:mm" to minutes since midnight.
func parseClockMinutes(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", attendance.ErrInvalidClockTime, s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ComputeHours returns the decimal-hour difference between clockOut and
// clockIn, rounded to 2 places, or zero when either time is missing.
// A checkout numerically before check-in yields a negative value;
// overnight shifts are not handled here.
func ComputeHours(clockIn, clockOut string) (decimal.Decimal, error) {
	if blankTime(clockIn) || blankTime(clockOut) {
		return decimal.Zero, nil
	}

	in, err := parseClockMinutes(clockIn)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := parseClockMinutes(clockOut)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromInt(int64(out - in)).Div(sixty).Round(2), nil
}

// IsLate reports whether actual is strictly after expected.
func IsLate(actual, expected string) (bool, error) {
	a, err := parseClockMinutes(actual)
	if err != nil {
		return false, err
	}
	e, err := parseClockMinutes(expected)
	if err != nil {
		return false, err
	}
	return a > e, nil
}

// Classify derives the day's status from the clock times and the
// company's thresholds:
//
//   - no clock-in and no clock-out: absent
//   - clock-in only: half_day (mid-day placeholder until checkout)
//   - both set: hours < half_day_hours -> half_day,
//     hours < full_day_hours -> late, else present
//
// When both times are set and the clock-in is strictly later than the
// expected start, the result is forced to late no matter how many hours
// were worked. Tardiness is penalized even on a full working day.
func Classify(clockIn, clockOut string, rules company.AttendanceRules) (attendance.Status, error) {
	inBlank := blankTime(clockIn)
	outBlank := blankTime(clockOut)

	switch {
	case inBlank && outBlank:
		return attendance.StatusAbsent, nil
	case inBlank:
		// Checkout without check-in violates the record invariant.
		return "", attendance.ErrNotClockedIn
	case outBlank:
		return attendance.StatusHalfDay, nil
	}

	hours, err := ComputeHours(clockIn, clockOut)
	if err != nil {
		return "", err
	}

	half := decimal.NewFromInt(int64(rules.HalfDayHours))
	full := decimal.NewFromInt(int64(rules.FullDayHours))

	status := attendance.StatusPresent
	switch {
	case hours.LessThan(half):
		status = attendance.StatusHalfDay
	case hours.LessThan(full):
		status = attendance.StatusLate
	}

	late, err := IsLate(clockIn, rules.ClockInTime)
	if err != nil {
		return "", err
	}
	if late {
		status = attendance.StatusLate
	}

	return status, nil
}
