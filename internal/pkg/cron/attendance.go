package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/employee"
	attendancesvc "github.com/clockwise-hr/clockwise-backend-go/internal/service/attendance"
	"github.com/shopspring/decimal"
)

// AttendanceJobs holds the nightly reconciliation sweep that finalizes
// every employee's attendance record for the day.
type AttendanceJobs struct {
	attendanceRepo attendance.Repository
	companyRepo    company.Repository
	employeeRepo   employee.Repository

	cutoffTime string // synthetic clock-out for dangling check-ins
	runHour    int    // local hour the sweep fires in

	// now is swappable in tests
	now func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.Repository,
	companyRepo company.Repository,
	employeeRepo employee.Repository,
	cutoffTime string,
	runHour int,
) *AttendanceJobs {
	if cutoffTime == "" {
		cutoffTime = "18:00"
	}
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		companyRepo:    companyRepo,
		employeeRepo:   employeeRepo,
		cutoffTime:     cutoffTime,
		runHour:        runHour,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("daily_attendance_reconciliation", 1*time.Hour, j.ReconcileDaily)
}

// ReconcileDaily is the scheduled entry point. The ticker fires hourly;
// the sweep itself only runs during the configured hour.
func (j *AttendanceJobs) ReconcileDaily(ctx context.Context) error {
	now := j.now()
	if now.Hour() != j.runHour {
		return nil
	}
	return j.ReconcileDay(ctx, now)
}

// ReconcileDay reconciles every company's attendance for the given date.
// It is a function of the supplied date, not the wall clock, so re-runs
// and tests can target any day. Per-record failures are logged and the
// sweep continues; re-running on the same day is a no-op for records
// that already have both times set.
func (j *AttendanceJobs) ReconcileDay(ctx context.Context, date time.Time) error {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if off, label := attendancesvc.WeeklyOff(day); off {
		return j.stampWeeklyOff(ctx, day, label)
	}

	slog.Info("Cron: Starting attendance reconciliation", "date", day.Format("2006-01-02"))

	companies, err := j.companyRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	reconciled := 0
	for _, comp := range companies {
		rules, err := j.companyRepo.GetRules(ctx, comp.ID)
		if err != nil {
			slog.Error("Cron: Failed to load attendance rules", "company_id", comp.ID, "error", err)
			rules = company.DefaultAttendanceRules(comp.ID)
		}

		employees, err := j.employeeRepo.ListActiveByCompany(ctx, comp.ID)
		if err != nil {
			slog.Error("Cron: Failed to list employees", "company_id", comp.ID, "error", err)
			continue
		}

		for _, emp := range employees {
			if err := j.reconcileEmployee(ctx, comp.ID, emp.ID, day, rules); err != nil {
				slog.Error("Cron: Failed to reconcile attendance",
					"company_id", comp.ID,
					"employee_id", emp.ID,
					"error", err)
				continue
			}
			reconciled++
		}
	}

	slog.Info("Cron: Attendance reconciliation finished", "date", day.Format("2006-01-02"), "employees", reconciled)
	return nil
}

// reconcileEmployee finalizes one employee's day: backfills an absent
// record, auto-closes a dangling clock-in at the cutoff, and leaves
// finalized records untouched.
func (j *AttendanceJobs) reconcileEmployee(ctx context.Context, companyID, employeeID string, day time.Time, rules company.AttendanceRules) error {
	record, err := j.attendanceRepo.FindByEmployeeAndDate(ctx, employeeID, companyID, day)
	if err != nil {
		return err
	}

	if record == nil {
		absent := attendance.Record{
			EmployeeID:  employeeID,
			CompanyID:   companyID,
			Date:        day,
			HoursWorked: decimal.Zero,
			Status:      attendance.StatusAbsent,
		}
		_, err := j.attendanceRepo.Create(ctx, absent)
		return err
	}

	if record.Finalized() || !record.HasClockIn() {
		return nil
	}

	// Dangling clock-in: the employee never checked out. A malformed
	// stored time must not kill the batch, so it degrades to midnight.
	clockIn := *record.ClockIn
	if _, err := time.Parse(attendancesvc.ClockLayout, clockIn); err != nil {
		slog.Error("Cron: Malformed clock-in time, substituting 00:00",
			"employee_id", employeeID,
			"clock_in", clockIn)
		clockIn = "00:00"
	}

	hours, err := attendancesvc.ComputeHours(clockIn, j.cutoffTime)
	if err != nil {
		return err
	}
	status, err := attendancesvc.Classify(clockIn, j.cutoffTime, rules)
	if err != nil {
		return err
	}

	clockOut := j.cutoffTime
	record.ClockOut = &clockOut
	record.HoursWorked = hours
	record.Status = status

	return j.attendanceRepo.Update(ctx, *record)
}

// stampWeeklyOff writes a Leave record for every employee of every
// company, or refreshes the annotation on existing rows. Weekly-off days
// get no further processing.
func (j *AttendanceJobs) stampWeeklyOff(ctx context.Context, day time.Time, label string) error {
	slog.Info("Cron: Weekly-off day, stamping leave records", "date", day.Format("2006-01-02"), "label", label)

	companies, err := j.companyRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list companies: %w", err)
	}

	stamped := 0
	for _, comp := range companies {
		employees, err := j.employeeRepo.ListActiveByCompany(ctx, comp.ID)
		if err != nil {
			slog.Error("Cron: Failed to list employees", "company_id", comp.ID, "error", err)
			continue
		}

		for _, emp := range employees {
			if err := j.stampEmployeeOff(ctx, comp.ID, emp.ID, day, label); err != nil {
				slog.Error("Cron: Failed to stamp weekly-off",
					"company_id", comp.ID,
					"employee_id", emp.ID,
					"error", err)
				continue
			}
			stamped++
		}
	}

	slog.Info("Cron: Weekly-off stamping finished", "label", label, "employees", stamped)
	return nil
}

func (j *AttendanceJobs) stampEmployeeOff(ctx context.Context, companyID, employeeID string, day time.Time, label string) error {
	record, err := j.attendanceRepo.FindByEmployeeAndDate(ctx, employeeID, companyID, day)
	if err != nil {
		return err
	}

	if record == nil {
		dash := "-"
		leave := attendance.Record{
			EmployeeID:  employeeID,
			CompanyID:   companyID,
			Date:        day,
			ClockIn:     &dash,
			ClockOut:    &dash,
			HoursWorked: decimal.Zero,
			Status:      attendance.StatusLeave,
			Message:     &label,
		}
		_, err := j.attendanceRepo.Create(ctx, leave)
		return err
	}

	// Existing rows only get the annotation refreshed.
	if record.Message == nil || *record.Message != label {
		record.Message = &label
		return j.attendanceRepo.Update(ctx, *record)
	}
	return nil
}
