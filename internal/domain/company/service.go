package company

import "context"

// Service defines business logic for company attendance rules.
type Service interface {
	GetRules(ctx context.Context, companyID string) (*RulesResponse, error)
	UpdateRules(ctx context.Context, req *UpdateRulesRequest) (*RulesResponse, error)
}
