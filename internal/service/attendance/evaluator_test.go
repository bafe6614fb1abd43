package attendance

import (
	"testing"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRules() company.AttendanceRules {
	return company.DefaultAttendanceRules("company-1")
}

func TestComputeHours(t *testing.T) {
	cases := []struct {
		name     string
		clockIn  string
		clockOut string
		want     string
	}{
		{"full day", "09:00", "17:00", "8"},
		{"late full shift", "09:10", "17:10", "8"},
		{"short morning", "09:00", "12:00", "3"},
		{"fractional hours", "09:30", "18:00", "8.5"},
		{"uneven minutes", "09:17", "17:00", "7.72"},
		{"zero span", "09:00", "09:00", "0"},
		{"checkout before checkin", "17:00", "09:00", "-8"},
		{"blank clock-in", "", "17:00", "0"},
		{"blank clock-out", "09:00", "", "0"},
		{"weekly-off placeholders", "-", "-", "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ComputeHours(c.clockIn, c.clockOut)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func TestComputeHours_MalformedTime(t *testing.T) {
	_, err := ComputeHours("9am", "17:00")
	assert.ErrorIs(t, err, attendance.ErrInvalidClockTime)

	_, err = ComputeHours("09:00", "25:61")
	assert.ErrorIs(t, err, attendance.ErrInvalidClockTime)
}

func TestIsLate(t *testing.T) {
	cases := []struct {
		actual   string
		expected string
		want     bool
	}{
		{"09:01", "09:00", true},
		{"09:00", "09:00", false},
		{"08:59", "09:00", false},
		{"14:30", "09:00", true},
	}

	for _, c := range cases {
		got, err := IsLate(c.actual, c.expected)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "IsLate(%q, %q)", c.actual, c.expected)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		clockIn  string
		clockOut string
		want     attendance.Status
	}{
		{"full day on time", "09:00", "17:00", attendance.StatusPresent},
		{"full hours but late start", "09:10", "17:10", attendance.StatusLate},
		{"short day", "09:00", "16:00", attendance.StatusLate},
		{"half day", "09:00", "12:00", attendance.StatusHalfDay},
		{"boundary exactly half-day hours", "09:00", "13:00", attendance.StatusLate},
		{"boundary exactly full-day hours", "09:00", "17:00", attendance.StatusPresent},
		{"no times at all", "", "", attendance.StatusAbsent},
		{"clock-in only", "09:00", "", attendance.StatusHalfDay},
		{"late overrides half day", "12:00", "14:00", attendance.StatusLate},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Classify(c.clockIn, c.clockOut, defaultRules())
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassify_ClockOutWithoutClockIn(t *testing.T) {
	_, err := Classify("", "17:00", defaultRules())
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClassify_CustomThresholds(t *testing.T) {
	rules := company.AttendanceRules{
		CompanyID:    "company-1",
		ClockInTime:  "10:00",
		FullDayHours: 6,
		HalfDayHours: 3,
	}

	status, err := Classify("10:00", "16:00", rules)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, status)

	status, err = Classify("10:00", "14:00", rules)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, status)

	// On time for a 10:00 start even though it is past 09:00.
	status, err = Classify("09:30", "16:00", rules)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, status)
}
