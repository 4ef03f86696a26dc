package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/auth"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
)

func (s *Service) Submit(ctx context.Context, sess auth.Session, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	leaveType, err := s.types.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	if !leaveType.Allows(req.DurationType) {
		return leave.LeaveRequestResponse{}, leave.ErrDurationNotAllowed
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}

	// An absent end date means a single-day request.
	endDate := startDate
	if req.EndDate != "" {
		endDate, err = time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return leave.LeaveRequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
		}
	}

	// The stored total is always recomputed here; the client's own figure is
	// never trusted.
	totalDays, err := TotalDays(req.DurationType, startDate, endDate, req.Hours)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var hours *float64
	if req.DurationType == leave.DurationHourly {
		hours = req.Hours
	}

	request := leave.LeaveRequest{
		ID:           uuid.NewString(),
		RequesterID:  sess.UserID,
		LeaveTypeID:  leaveType.ID,
		StartDate:    startDate,
		EndDate:      endDate,
		DurationType: req.DurationType,
		Hours:        hours,
		TotalDays:    totalDays,
		Reason:       req.Reason,
		Contact:      req.Contact,
		Status:       leave.StatusPendingHOD,
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToLeaveRequestResponse(created), nil
}

func (s *Service) MyRequests(ctx context.Context, sess auth.Session) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requests.ListByRequester(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.ToLeaveRequestResponses(requests), nil
}

func (s *Service) PendingForHOD(ctx context.Context, sess auth.Session) ([]leave.LeaveRequestResponse, error) {
	if !sess.Capabilities().CanReviewAsHOD {
		return nil, user.ErrHODPrivilegeRequired
	}
	if sess.DepartmentID == nil {
		return nil, user.ErrDepartmentRequired
	}

	requests, err := s.requests.ListPendingForDepartment(ctx, *sess.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return leave.ToLeaveRequestResponses(requests), nil
}

func (s *Service) PendingForAdmin(ctx context.Context, sess auth.Session) ([]leave.LeaveRequestResponse, error) {
	if !sess.Capabilities().CanReviewAsAdmin {
		return nil, user.ErrAdminPrivilegeRequired
	}

	requests, err := s.requests.ListPendingForAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return leave.ToLeaveRequestResponses(requests), nil
}

func (s *Service) HODApprove(ctx context.Context, sess auth.Session, requestID string) (leave.TransitionOutcome, error) {
	return s.hodReview(ctx, sess, requestID, leave.StatusPendingAdmin)
}

func (s *Service) HODReject(ctx context.Context, sess auth.Session, requestID string) (leave.TransitionOutcome, error) {
	return s.hodReview(ctx, sess, requestID, leave.StatusRejected)
}

// hodReview moves a pending_hod request forward or to rejected, after
// confirming the reviewer heads the requester's department. The reviewer id
// lands in hod_approved_by for both decisions; at this stage it reads as
// "handled by".
func (s *Service) hodReview(ctx context.Context, sess auth.Session, requestID string, to leave.RequestStatus) (leave.TransitionOutcome, error) {
	if !sess.Capabilities().CanReviewAsHOD {
		return "", user.ErrHODPrivilegeRequired
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.TransitionNotFound, nil
		}
		return "", fmt.Errorf("failed to get leave request: %w", err)
	}

	// An HOD never acts on another department's requests.
	if sess.DepartmentID == nil || request.DepartmentID == nil || *request.DepartmentID != *sess.DepartmentID {
		return "", leave.ErrDepartmentMismatch
	}

	reviewerID := sess.UserID
	outcome, err := s.requests.UpdateStatus(ctx, requestID, leave.StatusPendingHOD, to, leave.StatusPatch{
		HODApprovedBy: &reviewerID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to update leave request status: %w", err)
	}
	return outcome, nil
}

// AdminApprove finalizes a request. The status flip and the balance debit
// commit in one transaction: a request is never approved without its days
// being deducted, and a lost race debits nothing.
func (s *Service) AdminApprove(ctx context.Context, sess auth.Session, requestID string) (leave.TransitionOutcome, error) {
	if !sess.Capabilities().CanReviewAsAdmin {
		return "", user.ErrAdminPrivilegeRequired
	}

	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.TransitionNotFound, nil
		}
		return "", fmt.Errorf("failed to get leave request: %w", err)
	}

	var outcome leave.TransitionOutcome
	err = s.withTx(ctx, func(txCtx context.Context) error {
		outcome, err = s.requests.UpdateStatus(txCtx, requestID, leave.StatusPendingAdmin, leave.StatusApproved, leave.StatusPatch{})
		if err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}
		if outcome != leave.TransitionApplied {
			return nil
		}
		if err := s.balances.Debit(txCtx, request.RequesterID, request.TotalDays); err != nil {
			// A requester without a balance row still gets the approval;
			// there is simply nothing to deduct from.
			if errors.Is(err, pgx.ErrNoRows) {
				slog.Warn("no balance row to debit", "requester_id", request.RequesterID)
				return nil
			}
			return fmt.Errorf("failed to debit leave balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

func (s *Service) AdminReject(ctx context.Context, sess auth.Session, requestID string) (leave.TransitionOutcome, error) {
	if !sess.Capabilities().CanReviewAsAdmin {
		return "", user.ErrAdminPrivilegeRequired
	}

	reviewerID := sess.UserID
	outcome, err := s.requests.UpdateStatus(ctx, requestID, leave.StatusPendingAdmin, leave.StatusRejected, leave.StatusPatch{
		RejectedBy: &reviewerID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to update leave request status: %w", err)
	}
	return outcome, nil
}
