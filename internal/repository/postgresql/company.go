package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companyRepository struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.Repository {
	return &companyRepository{db: db}
}

// List implements company.Repository.
func (c *companyRepository) List(ctx context.Context) ([]company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, username, address, created_at, updated_at
		FROM companies
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		var comp company.Company
		if err := rows.Scan(&comp.ID, &comp.Name, &comp.Username, &comp.Address, &comp.CreatedAt, &comp.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, comp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}

	return companies, nil
}

// GetByID implements company.Repository.
func (c *companyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, name, username, address, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	var comp company.Company
	err := q.QueryRow(ctx, query, id).Scan(&comp.ID, &comp.Name, &comp.Username, &comp.Address, &comp.CreatedAt, &comp.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	return comp, nil
}

// GetRules implements company.Repository. Companies that never saved
// their own thresholds get the documented defaults.
func (c *companyRepository) GetRules(ctx context.Context, companyID string) (company.AttendanceRules, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT company_id, clock_in_time, full_day_hours, half_day_hours, updated_at
		FROM company_attendance_rules
		WHERE company_id = $1
	`

	var rules company.AttendanceRules
	err := q.QueryRow(ctx, query, companyID).Scan(
		&rules.CompanyID, &rules.ClockInTime, &rules.FullDayHours, &rules.HalfDayHours, &rules.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.DefaultAttendanceRules(companyID), nil
		}
		return company.AttendanceRules{}, fmt.Errorf("failed to get attendance rules: %w", err)
	}

	return rules, nil
}

// UpdateRules implements company.Repository.
func (c *companyRepository) UpdateRules(ctx context.Context, rules company.AttendanceRules) error {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO company_attendance_rules (company_id, clock_in_time, full_day_hours, half_day_hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (company_id) DO UPDATE SET
			clock_in_time = EXCLUDED.clock_in_time,
			full_day_hours = EXCLUDED.full_day_hours,
			half_day_hours = EXCLUDED.half_day_hours,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, rules.CompanyID, rules.ClockInTime, rules.FullDayHours, rules.HalfDayHours); err != nil {
		return fmt.Errorf("failed to update attendance rules: %w", err)
	}

	return nil
}
