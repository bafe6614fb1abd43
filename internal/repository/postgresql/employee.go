package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, user_id, company_id, full_name, email, position, is_admin,
	status, hire_date, created_at, updated_at, deleted_at
`

// GetByID implements employee.Repository.
func (e *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
		  AND company_id = $2
		  AND deleted_at IS NULL
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.UserID, &emp.CompanyID, &emp.FullName, &emp.Email, &emp.Position, &emp.IsAdmin,
		&emp.Status, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ListActiveByCompany implements employee.Repository.
func (e *employeeRepository) ListActiveByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1
		  AND status = 'active'
		  AND deleted_at IS NULL
		ORDER BY full_name
	`

	return e.queryEmployees(ctx, q, query, companyID)
}

// GetAdminsByCompany implements employee.Repository.
func (e *employeeRepository) GetAdminsByCompany(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE company_id = $1
		  AND is_admin = TRUE
		  AND status = 'active'
		  AND deleted_at IS NULL
	`

	return e.queryEmployees(ctx, q, query, companyID)
}

func (e *employeeRepository) queryEmployees(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]employee.Employee, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.UserID, &emp.CompanyID, &emp.FullName, &emp.Email, &emp.Position, &emp.IsAdmin,
			&emp.Status, &emp.HireDate, &emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}
