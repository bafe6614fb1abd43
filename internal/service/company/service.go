package company

import (
	"context"
	"fmt"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/database"
)

type ServiceImpl struct {
	db   *database.DB
	repo company.Repository
}

func NewCompanyService(db *database.DB, repo company.Repository) *ServiceImpl {
	return &ServiceImpl{db: db, repo: repo}
}

// GetRules returns the company's attendance rules, defaults included.
func (s *ServiceImpl) GetRules(ctx context.Context, companyID string) (*company.RulesResponse, error) {
	rules, err := s.repo.GetRules(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance rules: %w", err)
	}

	return mapRulesToResponse(rules), nil
}

// UpdateRules validates and persists new attendance thresholds.
func (s *ServiceImpl) UpdateRules(ctx context.Context, req *company.UpdateRulesRequest) (*company.RulesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.HalfDayHours >= req.FullDayHours {
		return nil, company.ErrInvalidRules
	}

	if _, err := s.repo.GetByID(ctx, req.CompanyID); err != nil {
		return nil, err
	}

	rules := company.AttendanceRules{
		CompanyID:    req.CompanyID,
		ClockInTime:  req.ClockInTime,
		FullDayHours: req.FullDayHours,
		HalfDayHours: req.HalfDayHours,
	}

	if err := s.repo.UpdateRules(ctx, rules); err != nil {
		return nil, fmt.Errorf("failed to update attendance rules: %w", err)
	}

	return mapRulesToResponse(rules), nil
}

func mapRulesToResponse(rules company.AttendanceRules) *company.RulesResponse {
	return &company.RulesResponse{
		CompanyID:    rules.CompanyID,
		ClockInTime:  rules.ClockInTime,
		FullDayHours: rules.FullDayHours,
		HalfDayHours: rules.HalfDayHours,
	}
}
