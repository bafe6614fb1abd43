package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/activity"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/database"
	"github.com/clockwise-hr/clockwise-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ServiceImpl struct {
	db *database.DB
	attendance.Repository
	companyRepo     company.Repository
	employeeRepo    employee.Repository
	activityRepo    activity.Repository
	notificationSvc notification.Service

	// now is swappable in tests
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	companyRepo company.Repository,
	employeeRepo employee.Repository,
	activityRepo activity.Repository,
	notificationSvc notification.Service,
) *ServiceImpl {
	return &ServiceImpl{
		db:              db,
		Repository:      attendanceRepo,
		companyRepo:     companyRepo,
		employeeRepo:    employeeRepo,
		activityRepo:    activityRepo,
		notificationSvc: notificationSvc,
		now:             time.Now,
	}
}

// withTx runs fn inside a database transaction; repositories pick the
// tx out of the context. Falls through to plain execution when the
// service was built without a pool (fake repositories).
func (s *ServiceImpl) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.db == nil {
		return fn(ctx)
	}
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, "tx", tx))
	})
}

// ClockIn implements attendance.Service.
func (s *ServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now()
	today := dateOnly(now)
	clockIn := now.Format(ClockLayout)

	var saved attendance.Record
	err := s.withTx(ctx, func(ctx context.Context) error {
		existing, err := s.Repository.FindByEmployeeAndDate(ctx, req.EmployeeID, req.CompanyID, today)
		if err != nil {
			return fmt.Errorf("failed to look up today's record: %w", err)
		}

		if existing != nil && existing.HasClockIn() {
			return attendance.ErrAlreadyClockedIn
		}

		if existing == nil {
			record := attendance.Record{
				EmployeeID:  req.EmployeeID,
				CompanyID:   req.CompanyID,
				Date:        today,
				ClockIn:     &clockIn,
				HoursWorked: decimal.Zero,
				Status:      attendance.StatusClockedIn,
			}
			saved, err = s.Repository.Create(ctx, record)
			if err != nil {
				return fmt.Errorf("failed to create attendance record: %w", err)
			}
			return nil
		}

		// A sweep-stamped row ("-" placeholders) may already exist for
		// today; reuse it instead of violating the uniqueness constraint.
		existing.ClockIn = &clockIn
		existing.ClockOut = nil
		existing.HoursWorked = decimal.Zero
		existing.Status = attendance.StatusClockedIn
		if err := s.Repository.Update(ctx, *existing); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		saved = *existing
		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	s.recordActivity(ctx, req.CompanyID, req.EmployeeID, activity.ActionClockIn,
		fmt.Sprintf("clocked in at %s", clockIn))
	s.notifyAdmins(ctx, req.CompanyID, req.EmployeeID, notification.TypeAttendanceClockIn,
		"Employee Clocked In", fmt.Sprintf("Clock-in recorded at %s", clockIn), saved)

	return mapRecordToResponse(saved), nil
}

// ClockOut implements attendance.Service.
func (s *ServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.now()
	today := dateOnly(now)
	clockOut := now.Format(ClockLayout)

	rules, err := s.companyRepo.GetRules(ctx, req.CompanyID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load attendance rules: %w", err)
	}

	var saved attendance.Record
	var hours decimal.Decimal
	err = s.withTx(ctx, func(ctx context.Context) error {
		existing, err := s.Repository.FindByEmployeeAndDate(ctx, req.EmployeeID, req.CompanyID, today)
		if err != nil {
			return fmt.Errorf("failed to look up today's record: %w", err)
		}

		if existing == nil || !existing.HasClockIn() {
			return attendance.ErrNotClockedIn
		}
		if existing.HasClockOut() {
			return attendance.ErrAlreadyClockedOut
		}

		// Strict parse in the synchronous path: a malformed stored clock-in
		// surfaces to the caller instead of being zeroed.
		hours, err = ComputeHours(*existing.ClockIn, clockOut)
		if err != nil {
			return err
		}
		status, err := Classify(*existing.ClockIn, clockOut, rules)
		if err != nil {
			return err
		}

		existing.ClockOut = &clockOut
		existing.HoursWorked = hours
		existing.Status = status

		if err := s.Repository.Update(ctx, *existing); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		saved = *existing
		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	s.recordActivity(ctx, req.CompanyID, req.EmployeeID, activity.ActionClockOut,
		fmt.Sprintf("clocked out at %s (%s hours)", clockOut, hours.StringFixed(2)))
	s.notifyAdmins(ctx, req.CompanyID, req.EmployeeID, notification.TypeAttendanceClockOut,
		"Employee Clocked Out", fmt.Sprintf("Clock-out recorded at %s", clockOut), saved)

	return mapRecordToResponse(saved), nil
}

// ManualEdit implements attendance.Service. Admins can fix wrong clock
// times or fill a day the employee missed entirely.
func (s *ServiceImpl) ManualEdit(ctx context.Context, req attendance.ManualEditRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, req.CompanyID); err != nil {
		return attendance.RecordResponse{}, err
	}

	existing, err := s.Repository.FindByEmployeeAndDate(ctx, req.EmployeeID, req.CompanyID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up record: %w", err)
	}

	record := attendance.Record{
		EmployeeID: req.EmployeeID,
		CompanyID:  req.CompanyID,
		Date:       date,
	}
	if existing != nil {
		record = *existing
	}

	if req.StartTime != nil {
		record.ClockIn = req.StartTime
	}
	if req.EndTime != nil {
		record.ClockOut = req.EndTime
	}

	rules, err := s.companyRepo.GetRules(ctx, req.CompanyID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load attendance rules: %w", err)
	}

	var clockIn, clockOut string
	if record.ClockIn != nil {
		clockIn = *record.ClockIn
	}
	if record.ClockOut != nil {
		clockOut = *record.ClockOut
	}

	hours, err := ComputeHours(clockIn, clockOut)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	status, err := Classify(clockIn, clockOut, rules)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	record.HoursWorked = hours
	record.Status = status

	saved, err := s.Repository.Upsert(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	s.recordActivity(ctx, req.CompanyID, req.EmployeeID, activity.ActionManualEdit,
		fmt.Sprintf("attendance for %s corrected by admin %s", req.Date, req.AdminID))

	return mapRecordToResponse(saved), nil
}

// GetToday implements attendance.Service.
func (s *ServiceImpl) GetToday(ctx context.Context, employeeID, companyID string) (*attendance.RecordResponse, error) {
	record, err := s.Repository.FindByEmployeeAndDate(ctx, employeeID, companyID, dateOnly(s.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	resp := mapRecordToResponse(*record)
	return &resp, nil
}

// Get implements attendance.Service.
func (s *ServiceImpl) Get(ctx context.Context, id, companyID string) (attendance.RecordResponse, error) {
	record, err := s.Repository.GetByID(ctx, id, companyID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return mapRecordToResponse(record), nil
}

// List implements attendance.Service.
func (s *ServiceImpl) List(ctx context.Context, filter attendance.Filter, companyID string) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := s.Repository.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapRecordToResponse(record))
	}

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    responses,
	}, nil
}

// recordActivity writes an activity-log entry. Failures never roll back
// the attendance change.
func (s *ServiceImpl) recordActivity(ctx context.Context, companyID, employeeID string, action activity.Action, message string) {
	if s.activityRepo == nil {
		return
	}
	entry := activity.Entry{
		CompanyID:  companyID,
		EmployeeID: employeeID,
		Action:     action,
		Message:    message,
	}
	if err := s.activityRepo.Insert(ctx, entry); err != nil {
		slog.Warn("Failed to record activity", "company_id", companyID, "employee_id", employeeID, "error", err)
	}
}

// notifyAdmins pushes a fire-and-forget notification to every company
// admin with a linked user account.
func (s *ServiceImpl) notifyAdmins(ctx context.Context, companyID, employeeID string, typ notification.Type, title, message string, record attendance.Record) {
	if s.notificationSvc == nil {
		return
	}

	admins, err := s.employeeRepo.GetAdminsByCompany(ctx, companyID)
	if err != nil {
		slog.Warn("Failed to resolve company admins", "company_id", companyID, "error", err)
		return
	}

	for _, admin := range admins {
		if admin.UserID == nil {
			continue
		}
		_ = s.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			CompanyID:   companyID,
			RecipientID: *admin.UserID,
			Type:        typ,
			Title:       title,
			Message:     message,
			Data: map[string]interface{}{
				"employee_id": employeeID,
				"date":        record.Date.Format("2006-01-02"),
				"status":      string(record.Status),
			},
		})
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func mapRecordToResponse(record attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		EmployeeName: record.EmployeeName,
		Date:         record.Date.Format("2006-01-02"),
		ClockIn:      record.ClockIn,
		ClockOut:     record.ClockOut,
		HoursWorked:  record.HoursWorked.StringFixed(2),
		Status:       string(record.Status),
		Message:      record.Message,
		CreatedAt:    record.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:    record.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
