package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== in-memory fakes =====

type fakeAttendanceRepo struct {
	records map[string]attendance.Record // keyed by employeeID|date
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Record)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Record) (attendance.Record, error) {
	f.nextID++
	record.ID = "rec-" + string(rune('0'+f.nextID))
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	f.records[recordKey(record.EmployeeID, record.Date)] = record
	return record, nil
}

func (f *fakeAttendanceRepo) FindByEmployeeAndDate(_ context.Context, employeeID, _ string, date time.Time) (*attendance.Record, error) {
	if rec, ok := f.records[recordKey(employeeID, date)]; ok {
		copied := rec
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, record attendance.Record) error {
	key := recordKey(record.EmployeeID, record.Date)
	if _, ok := f.records[key]; !ok {
		return attendance.ErrRecordNotFound
	}
	record.UpdatedAt = time.Now()
	f.records[key] = record
	return nil
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, record attendance.Record) (attendance.Record, error) {
	key := recordKey(record.EmployeeID, record.Date)
	if existing, ok := f.records[key]; ok {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	} else {
		f.nextID++
		record.ID = "rec-" + string(rune('0'+f.nextID))
		record.CreatedAt = time.Now()
	}
	record.UpdatedAt = time.Now()
	f.records[key] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id, _ string) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.Filter, companyID string) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.CompanyID == companyID {
			out = append(out, rec)
		}
	}
	return out, int64(len(out)), nil
}

type fakeCompanyRepo struct {
	rules company.AttendanceRules
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]company.Company, error) {
	return []company.Company{{ID: f.rules.CompanyID}}, nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	return company.Company{ID: id}, nil
}

func (f *fakeCompanyRepo) GetRules(_ context.Context, _ string) (company.AttendanceRules, error) {
	return f.rules, nil
}

func (f *fakeCompanyRepo) UpdateRules(_ context.Context, rules company.AttendanceRules) error {
	f.rules = rules
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		f.employees[emp.ID] = emp
	}
	return f
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id, _ string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListActiveByCompany(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID == companyID && emp.Status == employee.EmploymentStatusActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetAdminsByCompany(_ context.Context, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if emp.CompanyID == companyID && emp.IsAdmin {
			out = append(out, emp)
		}
	}
	return out, nil
}

type fakeNotificationService struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeNotificationService) QueueNotification(_ context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func (f *fakeNotificationService) GetNotifications(context.Context, string, int, int, bool) (*notification.ListResponse, error) {
	return &notification.ListResponse{}, nil
}

func (f *fakeNotificationService) GetUnreadCount(context.Context, string) (int, error) {
	return 0, nil
}

func (f *fakeNotificationService) MarkAsRead(context.Context, string, notification.MarkAsReadRequest) error {
	return nil
}

func (f *fakeNotificationService) Subscribe(context.Context, string) (<-chan notification.SSEEvent, func()) {
	ch := make(chan notification.SSEEvent)
	return ch, func() { close(ch) }
}

func (f *fakeNotificationService) Stop() {}

// ===== helpers =====

const (
	testCompanyID  = "company-1"
	testEmployeeID = "employee-1"
)

func newTestService(t *testing.T, at time.Time) (*ServiceImpl, *fakeAttendanceRepo, *fakeNotificationService) {
	t.Helper()

	attendanceRepo := newFakeAttendanceRepo()
	companyRepo := &fakeCompanyRepo{rules: company.DefaultAttendanceRules(testCompanyID)}
	adminUserID := "user-admin"
	employeeRepo := newFakeEmployeeRepo(
		employee.Employee{
			ID:        testEmployeeID,
			CompanyID: testCompanyID,
			FullName:  "Asha Rao",
			Status:    employee.EmploymentStatusActive,
		},
		employee.Employee{
			ID:        "employee-admin",
			UserID:    &adminUserID,
			CompanyID: testCompanyID,
			FullName:  "Dev Kapoor",
			IsAdmin:   true,
			Status:    employee.EmploymentStatusActive,
		},
	)
	notifSvc := &fakeNotificationService{}

	svc := NewAttendanceService(nil, attendanceRepo, companyRepo, employeeRepo, nil, notifSvc)
	svc.now = func() time.Time { return at }

	return svc, attendanceRepo, notifSvc
}

// ===== tests =====

func TestClockIn(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.March, 3, 9, 5, 0, 0, time.UTC) // Monday
	svc, _, notifSvc := newTestService(t, at)

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{
		EmployeeID: testEmployeeID,
		CompanyID:  testCompanyID,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", resp.Date)
	require.NotNil(t, resp.ClockIn)
	assert.Equal(t, "09:05", *resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
	assert.Equal(t, string(attendance.StatusClockedIn), resp.Status)
	assert.Equal(t, "0.00", resp.HoursWorked)

	// One admin with a linked user account gets notified.
	require.Len(t, notifSvc.queued, 1)
	assert.Equal(t, "user-admin", notifSvc.queued[0].RecipientID)
	assert.Equal(t, notification.TypeAttendanceClockIn, notifSvc.queued[0].Type)
}

func TestClockIn_Twice(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.March, 3, 9, 5, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockIn_ReusesWeeklyOffStamp(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.March, 3, 8, 55, 0, 0, time.UTC)
	svc, repo, _ := newTestService(t, at)

	// A sweep-stamped row with placeholder times already exists for today.
	dash := "-"
	label := "Sunday"
	_, err := repo.Create(ctx, attendance.Record{
		EmployeeID: testEmployeeID,
		CompanyID:  testCompanyID,
		Date:       time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC),
		ClockIn:    &dash,
		ClockOut:   &dash,
		Status:     attendance.StatusLeave,
		Message:    &label,
	})
	require.NoError(t, err)

	resp, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)
	require.NotNil(t, resp.ClockIn)
	assert.Equal(t, "08:55", *resp.ClockIn)
	assert.Equal(t, string(attendance.StatusClockedIn), resp.Status)
}

func TestClockOut(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, morning)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, time.March, 3, 17, 0, 0, 0, time.UTC) }

	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	require.NotNil(t, resp.ClockOut)
	assert.Equal(t, "17:00", *resp.ClockOut)
	assert.Equal(t, "8.00", resp.HoursWorked)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestClockOut_LateArrival(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2025, time.March, 3, 9, 10, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, morning)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, time.March, 3, 17, 10, 0, 0, time.UTC) }

	resp, err := svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	// Full eight hours worked, still late because of the 09:10 start.
	assert.Equal(t, "8.00", resp.HoursWorked)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.March, 3, 17, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	_, err := svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOut_Twice(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, morning)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2025, time.March, 3, 17, 0, 0, 0, time.UTC) }

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, attendance.ClockOutRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestManualEdit_NewRecord(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	start, end := "09:00", "12:00"
	resp, err := svc.ManualEdit(ctx, attendance.ManualEditRequest{
		CompanyID:  testCompanyID,
		AdminID:    "employee-admin",
		EmployeeID: testEmployeeID,
		Date:       "2025-03-04",
		StartTime:  &start,
		EndTime:    &end,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-04", resp.Date)
	assert.Equal(t, "3.00", resp.HoursWorked)
	assert.Equal(t, string(attendance.StatusHalfDay), resp.Status)
}

func TestManualEdit_RecomputesExistingRecord(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2025, time.March, 3, 9, 10, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, morning)

	_, err := svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	// Admin corrects the start to 09:00 and closes the day.
	start, end := "09:00", "17:00"
	resp, err := svc.ManualEdit(ctx, attendance.ManualEditRequest{
		CompanyID:  testCompanyID,
		AdminID:    "employee-admin",
		EmployeeID: testEmployeeID,
		Date:       "2025-03-03",
		StartTime:  &start,
		EndTime:    &end,
	})
	require.NoError(t, err)

	assert.Equal(t, "8.00", resp.HoursWorked)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
}

func TestManualEdit_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	start := "09:00"
	_, err := svc.ManualEdit(ctx, attendance.ManualEditRequest{
		CompanyID:  testCompanyID,
		AdminID:    "employee-admin",
		EmployeeID: "nobody",
		Date:       "2025-03-04",
		StartTime:  &start,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestManualEdit_EndWithoutStart(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	end := "17:00"
	_, err := svc.ManualEdit(ctx, attendance.ManualEditRequest{
		CompanyID:  testCompanyID,
		AdminID:    "employee-admin",
		EmployeeID: testEmployeeID,
		Date:       "2025-03-04",
		EndTime:    &end,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetToday(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	svc, _, _ := newTestService(t, at)

	resp, err := svc.GetToday(ctx, testEmployeeID, testCompanyID)
	require.NoError(t, err)
	assert.Nil(t, resp)

	_, err = svc.ClockIn(ctx, attendance.ClockInRequest{EmployeeID: testEmployeeID, CompanyID: testCompanyID})
	require.NoError(t, err)

	resp, err = svc.GetToday(ctx, testEmployeeID, testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, string(attendance.StatusClockedIn), resp.Status)
}
