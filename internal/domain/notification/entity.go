package notification

import "time"

// Type represents the kind of notification
type Type string

const (
	TypeAttendanceClockIn      Type = "attendance_clock_in"
	TypeAttendanceClockOut     Type = "attendance_clock_out"
	TypeAttendanceManualEdit   Type = "attendance_manual_edit"
	TypeAttendanceAutoClosed   Type = "attendance_auto_closed"
	TypeAttendanceMarkedAbsent Type = "attendance_marked_absent"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	CompanyID   string
	RecipientID string
	SenderID    *string
	Type        Type
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
