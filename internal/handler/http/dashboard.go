package http

import (
	"net/http"

	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewDashboardHandler(leaveService leave.LeaveService) DashboardHandler {
	return &DashboardHandlerImpl{leaveService: leaveService}
}

// GetSummary implements DashboardHandler.
func (d *DashboardHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary := d.leaveService.Summarize(r.Context(), sess.UserID)
	response.Success(w, summary)
}
