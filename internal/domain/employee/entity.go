package employee

import "time"

type Employee struct {
	ID        string
	UserID    *string
	CompanyID string
	FullName  string
	Email     string
	Position  *string
	IsAdmin   bool
	Status    EmploymentStatus
	HireDate  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)
