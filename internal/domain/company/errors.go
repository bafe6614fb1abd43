package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")

	// Rules invariant: half-day threshold must stay below full-day.
	ErrInvalidRules = errors.New("half_day_hours must be less than full_day_hours")
)
