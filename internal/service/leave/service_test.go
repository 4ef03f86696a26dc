package leave

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/auth"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
)

// In-memory repositories for exercising the service without a database. The
// transition semantics mirror the SQL: UpdateStatus only applies when the
// row still holds the expected from-status.

type fakeTypeRepo struct {
	types map[string]leave.LeaveType
}

func newFakeTypeRepo(types ...leave.LeaveType) *fakeTypeRepo {
	r := &fakeTypeRepo{types: make(map[string]leave.LeaveType)}
	for _, t := range types {
		r.types[t.ID] = t
	}
	return r
}

func (r *fakeTypeRepo) Create(_ context.Context, t leave.LeaveType) (leave.LeaveType, error) {
	r.types[t.ID] = t
	return t, nil
}

func (r *fakeTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	t, ok := r.types[id]
	if !ok {
		return leave.LeaveType{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTypeRepo) List(_ context.Context) ([]leave.LeaveType, error) {
	out := make([]leave.LeaveType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTypeRepo) Update(_ context.Context, t leave.LeaveType) error {
	if _, ok := r.types[t.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.types[t.ID] = t
	return nil
}

func (r *fakeTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.types[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.types, id)
	return nil
}

type fakeRequestRepo struct {
	requests map[string]leave.LeaveRequest
}

func newFakeRequestRepo(requests ...leave.LeaveRequest) *fakeRequestRepo {
	r := &fakeRequestRepo{requests: make(map[string]leave.LeaveRequest)}
	for _, req := range requests {
		r.requests[req.ID] = req
	}
	return r
}

func (r *fakeRequestRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, pgx.ErrNoRows
	}
	return request, nil
}

func (r *fakeRequestRepo) ListByRequester(_ context.Context, requesterID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.RequesterID == requesterID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListPendingForDepartment(_ context.Context, departmentID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.Status == leave.StatusPendingHOD && request.DepartmentID != nil && *request.DepartmentID == departmentID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) ListPendingForAdmin(_ context.Context) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.Status == leave.StatusPendingAdmin {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeRequestRepo) CountPendingByRequester(_ context.Context, requesterID string) (int, error) {
	count := 0
	for _, request := range r.requests {
		if request.RequesterID == requesterID && request.Status.IsPending() {
			count++
		}
	}
	return count, nil
}

func (r *fakeRequestRepo) UpdateStatus(_ context.Context, id string, from, to leave.RequestStatus, patch leave.StatusPatch) (leave.TransitionOutcome, error) {
	request, ok := r.requests[id]
	if !ok {
		return leave.TransitionNotFound, nil
	}
	if request.Status != from {
		return leave.TransitionAlreadyHandled, nil
	}
	request.Status = to
	if patch.HODApprovedBy != nil {
		request.HODApprovedBy = patch.HODApprovedBy
	}
	if patch.RejectedBy != nil {
		request.RejectedBy = patch.RejectedBy
	}
	request.UpdatedAt = time.Now()
	r.requests[id] = request
	return leave.TransitionApplied, nil
}

type fakeBalanceRepo struct {
	balances map[string]leave.LeaveBalance
	debitErr error
}

func newFakeBalanceRepo(balances ...leave.LeaveBalance) *fakeBalanceRepo {
	r := &fakeBalanceRepo{balances: make(map[string]leave.LeaveBalance)}
	for _, b := range balances {
		r.balances[b.UserID] = b
	}
	return r
}

func (r *fakeBalanceRepo) Create(_ context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.balances[balance.UserID] = balance
	return balance, nil
}

func (r *fakeBalanceRepo) GetByUserID(_ context.Context, userID string) (leave.LeaveBalance, error) {
	b, ok := r.balances[userID]
	if !ok {
		return leave.LeaveBalance{}, pgx.ErrNoRows
	}
	return b, nil
}

func (r *fakeBalanceRepo) Debit(_ context.Context, userID string, days float64) error {
	if r.debitErr != nil {
		return r.debitErr
	}
	b, ok := r.balances[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	b.RemainingDays -= days
	if b.RemainingDays < 0 {
		b.RemainingDays = 0
	}
	r.balances[userID] = b
	return nil
}

// newTestService wires the service against the fakes, with transactions
// collapsed to plain calls.
func newTestService(types *fakeTypeRepo, requests *fakeRequestRepo, balances *fakeBalanceRepo) *Service {
	return &Service{
		types:    types,
		requests: requests,
		balances: balances,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func employeeSession(userID, departmentID string) auth.Session {
	return auth.Session{
		UserID:       userID,
		Email:        userID + "@example.com",
		Role:         user.RoleEmployee,
		DepartmentID: &departmentID,
	}
}

func hodSession(userID, departmentID string) auth.Session {
	return auth.Session{
		UserID:       userID,
		Email:        userID + "@example.com",
		Role:         user.RoleHOD,
		DepartmentID: &departmentID,
	}
}

func adminSession(userID string) auth.Session {
	return auth.Session{
		UserID: userID,
		Email:  userID + "@example.com",
		Role:   user.RoleAdmin,
	}
}
