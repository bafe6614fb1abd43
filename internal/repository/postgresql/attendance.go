package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.company_id, a.date,
	a.clock_in, a.clock_out, a.hours_worked, a.status, a.message,
	a.created_at, a.updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &rec.Status, &rec.Message,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, company_id, date, clock_in, clock_out, hours_worked, status, message
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.CompanyID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.HoursWorked,
		record.Status,
		record.Message,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// FindByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID, companyID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1
		  AND a.company_id = $2
		  AND a.date = $3
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, companyID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET clock_in = $1,
			clock_out = $2,
			hours_worked = $3,
			status = $4,
			message = $5,
			updated_at = NOW()
		WHERE id = $6
		  AND company_id = $7
	`

	tag, err := q.Exec(ctx, query,
		record.ClockIn,
		record.ClockOut,
		record.HoursWorked,
		record.Status,
		record.Message,
		record.ID,
		record.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// Upsert implements attendance.Repository. The uniqueness constraint on
// (employee_id, company_id, date) makes this the race-free write path
// for manual edits targeting days that may or may not have a row.
func (a *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, company_id, date, clock_in, clock_out, hours_worked, status, message
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, company_id, date) DO UPDATE SET
			clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			hours_worked = EXCLUDED.hours_worked,
			status = EXCLUDED.status,
			message = EXCLUDED.message,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.CompanyID,
		record.Date,
		record.ClockIn,
		record.ClockOut,
		record.HoursWorked,
		record.Status,
		record.Message,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `, e.full_name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
		  AND a.company_id = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &rec.Status, &rec.Message,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter, companyID string) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"a.company_id = $1"}
	args := []interface{}{companyID}
	argPos := 2

	addCondition := func(clause string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(clause, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		addCondition("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Status != nil && *filter.Status != "" {
		addCondition("a.status = $%d", *filter.Status)
	}
	if filter.Date != nil && *filter.Date != "" {
		addCondition("a.date = $%d", *filter.Date)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		addCondition("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		addCondition("a.date <= $%d", *filter.EndDate)
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_records a WHERE " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortColumns := map[string]string{
		"date":      "a.date",
		"clock_in":  "a.clock_in",
		"clock_out": "a.clock_out",
		"status":    "a.status",
	}
	sortBy, ok := sortColumns[filter.SortBy]
	if !ok {
		sortBy = "a.date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM attendance_records a
		JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, where, sortBy, sortOrder, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
			&rec.ClockIn, &rec.ClockOut, &rec.HoursWorked, &rec.Status, &rec.Message,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, total, nil
}
