package company

import (
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/validator"
)

type UpdateRulesRequest struct {
	CompanyID    string `json:"-"`
	ClockInTime  string `json:"clock_in_time"`
	FullDayHours int    `json:"full_day_hours"`
	HalfDayHours int    `json:"half_day_hours"`
}

func (r *UpdateRulesRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(r.ClockInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in_time",
			Message: "clock_in_time must be in HH:mm format",
		})
	}

	if r.FullDayHours <= 0 || r.FullDayHours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_day_hours",
			Message: "full_day_hours must be between 1 and 24",
		})
	}

	if r.HalfDayHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "half_day_hours",
			Message: "half_day_hours must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RulesResponse struct {
	CompanyID    string `json:"company_id"`
	ClockInTime  string `json:"clock_in_time"`
	FullDayHours int    `json:"full_day_hours"`
	HalfDayHours int    `json:"half_day_hours"`
}
