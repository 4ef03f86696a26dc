package leave

import (
	"context"

	"github.com/origin8hq/lms-backend-go/internal/domain/auth"
)

type LeaveService interface {
	// Catalog
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
	UpdateType(ctx context.Context, req UpdateLeaveTypeRequest) error
	DeleteType(ctx context.Context, id string) error

	// Requests
	Submit(ctx context.Context, sess auth.Session, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	MyRequests(ctx context.Context, sess auth.Session) ([]LeaveRequestResponse, error)
	PendingForHOD(ctx context.Context, sess auth.Session) ([]LeaveRequestResponse, error)
	PendingForAdmin(ctx context.Context, sess auth.Session) ([]LeaveRequestResponse, error)
	HODApprove(ctx context.Context, sess auth.Session, requestID string) (TransitionOutcome, error)
	HODReject(ctx context.Context, sess auth.Session, requestID string) (TransitionOutcome, error)
	AdminApprove(ctx context.Context, sess auth.Session, requestID string) (TransitionOutcome, error)
	AdminReject(ctx context.Context, sess auth.Session, requestID string) (TransitionOutcome, error)

	// Balance ledger. Lookup failures degrade to zero counts so dashboards
	// always render.
	Summarize(ctx context.Context, userID string) BalanceSummary
}
