package company

import (
	"context"
	"testing"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/clockwise-hr/clockwise-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompanyRepo struct {
	companies map[string]company.Company
	rules     map[string]company.AttendanceRules
}

func newFakeCompanyRepo(ids ...string) *fakeCompanyRepo {
	f := &fakeCompanyRepo{
		companies: make(map[string]company.Company),
		rules:     make(map[string]company.AttendanceRules),
	}
	for _, id := range ids {
		f.companies[id] = company.Company{ID: id}
	}
	return f
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]company.Company, error) {
	var out []company.Company
	for _, comp := range f.companies {
		out = append(out, comp)
	}
	return out, nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	if comp, ok := f.companies[id]; ok {
		return comp, nil
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) GetRules(_ context.Context, companyID string) (company.AttendanceRules, error) {
	if rules, ok := f.rules[companyID]; ok {
		return rules, nil
	}
	return company.DefaultAttendanceRules(companyID), nil
}

func (f *fakeCompanyRepo) UpdateRules(_ context.Context, rules company.AttendanceRules) error {
	f.rules[rules.CompanyID] = rules
	return nil
}

func TestGetRules_Defaults(t *testing.T) {
	svc := NewCompanyService(nil, newFakeCompanyRepo("company-1"))

	resp, err := svc.GetRules(context.Background(), "company-1")
	require.NoError(t, err)

	assert.Equal(t, company.DefaultClockInTime, resp.ClockInTime)
	assert.Equal(t, company.DefaultFullDayHours, resp.FullDayHours)
	assert.Equal(t, company.DefaultHalfDayHours, resp.HalfDayHours)
}

func TestUpdateRules(t *testing.T) {
	repo := newFakeCompanyRepo("company-1")
	svc := NewCompanyService(nil, repo)

	resp, err := svc.UpdateRules(context.Background(), &company.UpdateRulesRequest{
		CompanyID:    "company-1",
		ClockInTime:  "10:00",
		FullDayHours: 7,
		HalfDayHours: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.ClockInTime)

	saved, err := svc.GetRules(context.Background(), "company-1")
	require.NoError(t, err)
	assert.Equal(t, 7, saved.FullDayHours)
	assert.Equal(t, 3, saved.HalfDayHours)
}

func TestUpdateRules_HalfMustStayBelowFull(t *testing.T) {
	svc := NewCompanyService(nil, newFakeCompanyRepo("company-1"))

	_, err := svc.UpdateRules(context.Background(), &company.UpdateRulesRequest{
		CompanyID:    "company-1",
		ClockInTime:  "09:00",
		FullDayHours: 6,
		HalfDayHours: 6,
	})
	assert.ErrorIs(t, err, company.ErrInvalidRules)
}

func TestUpdateRules_Validation(t *testing.T) {
	svc := NewCompanyService(nil, newFakeCompanyRepo("company-1"))

	_, err := svc.UpdateRules(context.Background(), &company.UpdateRulesRequest{
		CompanyID:    "company-1",
		ClockInTime:  "9am",
		FullDayHours: 30,
		HalfDayHours: 0,
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	details := verrs.ToMap()
	assert.Contains(t, details, "clock_in_time")
	assert.Contains(t, details, "full_day_hours")
	assert.Contains(t, details, "half_day_hours")
}

func TestUpdateRules_UnknownCompany(t *testing.T) {
	svc := NewCompanyService(nil, newFakeCompanyRepo("company-1"))

	_, err := svc.UpdateRules(context.Background(), &company.UpdateRulesRequest{
		CompanyID:    "company-404",
		ClockInTime:  "09:00",
		FullDayHours: 8,
		HalfDayHours: 4,
	})
	assert.ErrorIs(t, err, company.ErrCompanyNotFound)
}
