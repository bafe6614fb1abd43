package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/company"
	"github.com/clockwise-hr/clockwise-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	GetRules(w http.ResponseWriter, r *http.Request)
	UpdateRules(w http.ResponseWriter, r *http.Request)
}

type companyHandlerImpl struct {
	companyService company.Service
}

func NewCompanyHandler(companyService company.Service) CompanyHandler {
	return &companyHandlerImpl{
		companyService: companyService,
	}
}

// GetRules implements CompanyHandler.
func (h *companyHandlerImpl) GetRules(w http.ResponseWriter, r *http.Request) {
	companyID := claimString(r, "company_id")
	if companyID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	result, err := h.companyService.GetRules(r.Context(), companyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateRules implements CompanyHandler.
func (h *companyHandlerImpl) UpdateRules(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateRulesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	req.CompanyID = claimString(r, "company_id")

	result, err := h.companyService.UpdateRules(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance rules updated", result)
}
