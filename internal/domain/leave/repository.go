package leave

import "context"

// LeaveTypeRepository - interface for the leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) error
	Delete(ctx context.Context, id string) error
}

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByRequester(ctx context.Context, requesterID string) ([]LeaveRequest, error)
	// ListPendingForDepartment returns requests in pending_hod whose requester
	// belongs to the given department, newest first.
	ListPendingForDepartment(ctx context.Context, departmentID string) ([]LeaveRequest, error)
	// ListPendingForAdmin returns requests in pending_admin across all
	// departments, newest first.
	ListPendingForAdmin(ctx context.Context) ([]LeaveRequest, error)
	CountPendingByRequester(ctx context.Context, requesterID string) (int, error)
	// UpdateStatus flips status from "from" to "to" only if the row still holds
	// "from", stamping any reviewer columns in patch. The outcome distinguishes
	// a missing row from one another reviewer already moved on.
	UpdateStatus(ctx context.Context, id string, from, to RequestStatus, patch StatusPatch) (TransitionOutcome, error)
}

// LeaveBalanceRepository - interface for the leave_balances table
type LeaveBalanceRepository interface {
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)
	GetByUserID(ctx context.Context, userID string) (LeaveBalance, error)
	// Debit subtracts days from remaining_days, clamped at zero.
	Debit(ctx context.Context, userID string, days float64) error
}
