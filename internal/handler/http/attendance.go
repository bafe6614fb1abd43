package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/clockwise-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ManualEdit(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// claimString extracts a string claim from the verified JWT.
func claimString(r *http.Request, key string) string {
	_, claims, _ := jwtauth.FromContext(r.Context())
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req := attendance.ClockInRequest{
		EmployeeID: claimString(r, "employee_id"),
		CompanyID:  claimString(r, "company_id"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Clock in successful", result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req := attendance.ClockOutRequest{
		EmployeeID: claimString(r, "employee_id"),
		CompanyID:  claimString(r, "company_id"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	employeeID := claimString(r, "employee_id")
	companyID := claimString(r, "company_id")
	if employeeID == "" || companyID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), employeeID, companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	companyID := claimString(r, "company_id")
	id := chi.URLParam(r, "id")

	result, err := h.attendanceService.Get(r.Context(), id, companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID := claimString(r, "company_id")

	query := r.URL.Query()
	filter := attendance.Filter{
		Page:      getIntQueryParam(r, "page", 1),
		Limit:     getIntQueryParam(r, "limit", 20),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}
	for key, dst := range map[string]**string{
		"employee_id": &filter.EmployeeID,
		"status":      &filter.Status,
		"date":        &filter.Date,
		"start_date":  &filter.StartDate,
		"end_date":    &filter.EndDate,
	} {
		if v := query.Get(key); v != "" {
			value := v
			*dst = &value
		}
	}

	result, err := h.attendanceService.List(r.Context(), filter, companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ManualEdit implements AttendanceHandler.
func (h *attendanceHandlerImpl) ManualEdit(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualEditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	req.CompanyID = claimString(r, "company_id")
	req.AdminID = claimString(r, "employee_id")

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ManualEdit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated", result)
}
