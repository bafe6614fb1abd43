package http

import (
	"net/http"
	"time"

	"github.com/clockwise-hr/clockwise-backend-go/internal/domain/activity"
	"github.com/clockwise-hr/clockwise-backend-go/internal/handler/http/response"
)

type ActivityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityRepo activity.Repository
}

func NewActivityHandler(activityRepo activity.Repository) ActivityHandler {
	return &activityHandlerImpl{
		activityRepo: activityRepo,
	}
}

// List returns the most recent activity-log entries for the company.
func (h *activityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companyID := claimString(r, "company_id")
	if companyID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	limit := getIntQueryParam(r, "limit", 50)

	entries, err := h.activityRepo.ListByCompany(r.Context(), companyID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]activity.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, activity.EntryResponse{
			ID:         entry.ID,
			EmployeeID: entry.EmployeeID,
			Action:     string(entry.Action),
			Message:    entry.Message,
			CreatedAt:  entry.CreatedAt.Format(time.RFC3339),
		})
	}

	response.Success(w, responses)
}
