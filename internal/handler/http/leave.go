package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/auth"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	ListTypes(w http.ResponseWriter, r *http.Request)
	CreateType(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)

	SubmitRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)

	ListPendingForHOD(w http.ResponseWriter, r *http.Request)
	HODApprove(w http.ResponseWriter, r *http.Request)
	HODReject(w http.ResponseWriter, r *http.Request)

	ListPendingForAdmin(w http.ResponseWriter, r *http.Request)
	AdminApprove(w http.ResponseWriter, r *http.Request)
	AdminReject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// ListTypes implements LeaveHandler.
func (l *LeaveHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := l.leaveService.ListTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// CreateType implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveType, err := l.leaveService.CreateType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", leave.ToLeaveTypeResponse(leaveType))
}

// UpdateType implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := l.leaveService.UpdateType(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", nil)
}

// DeleteType implements LeaveHandler.
func (l *LeaveHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Leave type ID is required", nil)
		return
	}

	if err := l.leaveService.DeleteType(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

// SubmitRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitRequest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.Submit(r.Context(), sess, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "request_id", created.ID, "requester_id", sess.UserID)
	response.Created(w, "Leave request submitted successfully", created)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := l.leaveService.MyRequests(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPendingForHOD implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPendingForHOD(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := l.leaveService.PendingForHOD(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPendingForAdmin implements LeaveHandler.
func (l *LeaveHandlerImpl) ListPendingForAdmin(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := l.leaveService.PendingForAdmin(r.Context(), sess)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// HODApprove implements LeaveHandler.
func (l *LeaveHandlerImpl) HODApprove(w http.ResponseWriter, r *http.Request) {
	l.review(w, r, l.leaveService.HODApprove, "Leave request approved")
}

// HODReject implements LeaveHandler.
func (l *LeaveHandlerImpl) HODReject(w http.ResponseWriter, r *http.Request) {
	l.review(w, r, l.leaveService.HODReject, "Leave request rejected")
}

// AdminApprove implements LeaveHandler.
func (l *LeaveHandlerImpl) AdminApprove(w http.ResponseWriter, r *http.Request) {
	l.review(w, r, l.leaveService.AdminApprove, "Leave request approved")
}

// AdminReject implements LeaveHandler.
func (l *LeaveHandlerImpl) AdminReject(w http.ResponseWriter, r *http.Request) {
	l.review(w, r, l.leaveService.AdminReject, "Leave request rejected")
}

// review runs one approve/reject action. A request another reviewer already
// moved on is reported as a success with its outcome, not a conflict: the
// caller's intent (get the request out of the queue) has been met.
func (l *LeaveHandlerImpl) review(w http.ResponseWriter, r *http.Request, action func(context.Context, auth.Session, string) (leave.TransitionOutcome, error), message string) {
	sess, err := sessionFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	outcome, err := action(r.Context(), sess, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result := leave.ReviewResponse{RequestID: requestID, Outcome: outcome}
	switch outcome {
	case leave.TransitionNotFound:
		response.NotFound(w, "Leave request not found")
	case leave.TransitionAlreadyHandled:
		response.SuccessWithMessage(w, "Leave request was already reviewed", result)
	default:
		slog.Info("Leave request reviewed", "request_id", requestID, "reviewer_id", sess.UserID, "outcome", outcome)
		response.SuccessWithMessage(w, message, result)
	}
}
