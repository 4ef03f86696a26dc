package leave

import "time"

// LeaveType is reference data: which duration modes a leave category permits.
type LeaveType struct {
	ID            string
	Name          string
	AllowsFullDay bool
	AllowsHalfDay bool
	AllowsHourly  bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Allows reports whether the duration mode is permitted for this type.
func (t LeaveType) Allows(d DurationType) bool {
	switch d {
	case DurationFullDay:
		return t.AllowsFullDay
	case DurationHalfDay:
		return t.AllowsHalfDay
	case DurationHourly:
		return t.AllowsHourly
	}
	return false
}

// DurationType maps to the duration_type enum in the DB.
type DurationType string

const (
	DurationFullDay DurationType = "full_day"
	DurationHalfDay DurationType = "half_day"
	DurationHourly  DurationType = "hourly"
)

func ValidDurationType(d DurationType) bool {
	return d == DurationFullDay || d == DurationHalfDay || d == DurationHourly
}

type RequestStatus string

const (
	StatusPendingHOD   RequestStatus = "pending_hod"
	StatusPendingAdmin RequestStatus = "pending_admin"
	StatusApproved     RequestStatus = "approved"
	StatusRejected     RequestStatus = "rejected"
)

// IsTerminal reports whether no further transition is permitted.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// IsPending reports whether the request still awaits a reviewer.
func (s RequestStatus) IsPending() bool {
	return s == StatusPendingHOD || s == StatusPendingAdmin
}

func ValidStatus(s RequestStatus) bool {
	return s.IsPending() || s.IsTerminal()
}

// TransitionOutcome is the explicit result of a conditional status update.
// A lost race between two reviewers surfaces as TransitionAlreadyHandled,
// never as a hard failure.
type TransitionOutcome string

const (
	TransitionApplied        TransitionOutcome = "applied"
	TransitionAlreadyHandled TransitionOutcome = "already_transitioned"
	TransitionNotFound       TransitionOutcome = "not_found"
)

// StatusPatch carries the reviewer columns stamped together with a status
// transition. Nil fields are left untouched.
type StatusPatch struct {
	HODApprovedBy *string
	RejectedBy    *string
}

// LeaveRequest entity
type LeaveRequest struct {
	ID           string
	RequesterID  string
	LeaveTypeID  string
	StartDate    time.Time
	EndDate      time.Time
	DurationType DurationType
	Hours        *float64 // set iff DurationType == hourly
	TotalDays    float64
	Reason       string
	Contact      string

	Status        RequestStatus
	HODApprovedBy *string
	RejectedBy    *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields for listings
	RequesterName  *string
	RequesterEmail *string
	LeaveTypeName  *string
	DepartmentID   *string
	DepartmentName *string
}

// LeaveBalance is the per-user entitlement row. "Used" is derived, never stored.
type LeaveBalance struct {
	UserID        string
	TotalEntitled float64
	RemainingDays float64
	UpdatedAt     time.Time
}

// Used returns entitled minus remaining, floored at zero so an
// over-credited row never reports negative usage.
func (b LeaveBalance) Used() float64 {
	used := b.TotalEntitled - b.RemainingDays
	if used < 0 {
		return 0
	}
	return used
}

// BalanceSummary is the dashboard aggregate for one user.
type BalanceSummary struct {
	Total     float64 `json:"total"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
	Pending   int     `json:"pending"`
}
