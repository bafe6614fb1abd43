package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in / clock-out state conflicts
	ErrAlreadyClockedIn  = errors.New("you have already clocked in today")
	ErrNotClockedIn      = errors.New("you have not clocked in yet")
	ErrAlreadyClockedOut = errors.New("you have already clocked out today")

	// General errors
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrInvalidClockTime = errors.New("clock time must be in HH:mm format")
)
