package postgresql

import (
	"context"
	"fmt"

	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// requestColumns is the shared select list: request fields plus the
// denormalized display joins (requester, leave type, department).
const requestColumns = `
	lr.id, lr.requester_id, lr.leave_type_id, lr.start_date, lr.end_date,
	lr.duration_type, lr.hours, lr.total_days, lr.reason, lr.contact,
	lr.status, lr.hod_approved_by, lr.rejected_by, lr.created_at, lr.updated_at,
	p.full_name, p.email, lt.name, p.department_id, d.name
`

const requestJoins = `
	FROM leave_requests lr
	INNER JOIN profiles p ON lr.requester_id = p.id
	INNER JOIN leave_types lt ON lr.leave_type_id = lt.id
	LEFT JOIN departments d ON p.department_id = d.id
`

func scanRequest(row interface{ Scan(dest ...any) error }) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.RequesterID, &lr.LeaveTypeID, &lr.StartDate, &lr.EndDate,
		&lr.DurationType, &lr.Hours, &lr.TotalDays, &lr.Reason, &lr.Contact,
		&lr.Status, &lr.HODApprovedBy, &lr.RejectedBy, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.RequesterName, &lr.RequesterEmail, &lr.LeaveTypeName, &lr.DepartmentID, &lr.DepartmentName,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, requester_id, leave_type_id, start_date, end_date,
			duration_type, hours, total_days, reason, contact,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID, request.RequesterID, request.LeaveTypeID, request.StartDate, request.EndDate,
		request.DurationType, request.Hours, request.TotalDays, request.Reason, request.Contact,
		request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + requestJoins + ` WHERE lr.id = $1`
	return scanRequest(q.QueryRow(ctx, query, id))
}

func (r *leaveRequestRepositoryImpl) ListByRequester(ctx context.Context, requesterID string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + `
		WHERE lr.requester_id = $1
		ORDER BY lr.created_at DESC`
	return r.list(ctx, query, requesterID)
}

func (r *leaveRequestRepositoryImpl) ListPendingForDepartment(ctx context.Context, departmentID string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + `
		WHERE lr.status = $1 AND p.department_id = $2
		ORDER BY lr.created_at DESC`
	return r.list(ctx, query, leave.StatusPendingHOD, departmentID)
}

func (r *leaveRequestRepositoryImpl) ListPendingForAdmin(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + requestColumns + requestJoins + `
		WHERE lr.status = $1
		ORDER BY lr.created_at DESC`
	return r.list(ctx, query, leave.StatusPendingAdmin)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

func (r *leaveRequestRepositoryImpl) CountPendingByRequester(ctx context.Context, requesterID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM leave_requests
		WHERE requester_id = $1 AND status = ANY($2)
	`

	var count int
	err := q.QueryRow(ctx, query, requesterID, []string{
		string(leave.StatusPendingHOD),
		string(leave.StatusPendingAdmin),
	}).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus is the optimistic-concurrency write: the transition applies
// only while the row still holds the expected prior status. Zero rows
// affected means another reviewer won the race, or the row is gone; the two
// are told apart with a follow-up existence check.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to leave.RequestStatus, patch leave.StatusPatch) (leave.TransitionOutcome, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $3,
		    hod_approved_by = COALESCE($4, hod_approved_by),
		    rejected_by = COALESCE($5, rejected_by),
		    updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	commandTag, err := q.Exec(ctx, query, id, from, to, patch.HODApprovedBy, patch.RejectedBy)
	if err != nil {
		return "", fmt.Errorf("conditional status update: %w", err)
	}
	if commandTag.RowsAffected() > 0 {
		return leave.TransitionApplied, nil
	}

	var exists bool
	err = q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return "", fmt.Errorf("existence check after lost update: %w", err)
	}
	if !exists {
		return leave.TransitionNotFound, nil
	}
	return leave.TransitionAlreadyHandled, nil
}
