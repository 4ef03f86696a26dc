package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/origin8hq/lms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var annualLeave = leave.LeaveType{
	ID:            "type-annual",
	Name:          "Annual Leave",
	AllowsFullDay: true,
	AllowsHalfDay: true,
	AllowsHourly:  false,
}

var timeOff = leave.LeaveType{
	ID:           "type-time-off",
	Name:         "Time Off",
	AllowsHourly: true,
}

func strPtr(s string) *string { return &s }

func pendingHODRequest(id, requesterID, departmentID string, totalDays float64) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:           id,
		RequesterID:  requesterID,
		LeaveTypeID:  annualLeave.ID,
		StartDate:    date("2024-03-04"),
		EndDate:      date("2024-03-08"),
		DurationType: leave.DurationFullDay,
		TotalDays:    totalDays,
		Reason:       "family event",
		Status:       leave.StatusPendingHOD,
		DepartmentID: strPtr(departmentID),
	}
}

func TestSubmitComputesTotalDays(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(annualLeave), newFakeRequestRepo(), newFakeBalanceRepo())
	sess := employeeSession("emp-1", "dept-1")

	created, err := svc.Submit(context.Background(), sess, leave.SubmitLeaveRequest{
		LeaveTypeID:  annualLeave.ID,
		StartDate:    "2024-03-04",
		EndDate:      "2024-03-08",
		DurationType: leave.DurationFullDay,
		Reason:       "family event",
	})
	require.NoError(t, err)

	assert.Equal(t, 5.0, created.TotalDays)
	assert.Equal(t, leave.StatusPendingHOD, created.Status)
	assert.Equal(t, "emp-1", created.RequesterID)
	assert.NotEmpty(t, created.ID)
}

func TestSubmitSingleDayWhenEndOmitted(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(annualLeave), newFakeRequestRepo(), newFakeBalanceRepo())

	created, err := svc.Submit(context.Background(), employeeSession("emp-1", "dept-1"), leave.SubmitLeaveRequest{
		LeaveTypeID:  annualLeave.ID,
		StartDate:    "2024-03-05",
		DurationType: leave.DurationFullDay,
		Reason:       "errand",
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, created.TotalDays)
	assert.Equal(t, created.StartDate, created.EndDate)
}

func TestSubmitHourly(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(timeOff), newFakeRequestRepo(), newFakeBalanceRepo())

	created, err := svc.Submit(context.Background(), employeeSession("emp-1", "dept-1"), leave.SubmitLeaveRequest{
		LeaveTypeID:  timeOff.ID,
		StartDate:    "2024-03-04",
		DurationType: leave.DurationHourly,
		Hours:        float64Ptr(4),
		Reason:       "appointment",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.5, created.TotalDays)
	require.NotNil(t, created.Hours)
	assert.Equal(t, 4.0, *created.Hours)
}

func TestSubmitRejectsDisallowedDuration(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(annualLeave), newFakeRequestRepo(), newFakeBalanceRepo())

	_, err := svc.Submit(context.Background(), employeeSession("emp-1", "dept-1"), leave.SubmitLeaveRequest{
		LeaveTypeID:  annualLeave.ID,
		StartDate:    "2024-03-04",
		DurationType: leave.DurationHourly,
		Hours:        float64Ptr(2),
		Reason:       "appointment",
	})
	assert.ErrorIs(t, err, leave.ErrDurationNotAllowed)
}

func TestSubmitUnknownLeaveType(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(), newFakeRequestRepo(), newFakeBalanceRepo())

	_, err := svc.Submit(context.Background(), employeeSession("emp-1", "dept-1"), leave.SubmitLeaveRequest{
		LeaveTypeID:  "no-such-type",
		StartDate:    "2024-03-04",
		DurationType: leave.DurationFullDay,
		Reason:       "errand",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}

func TestSubmitValidationFailure(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(annualLeave), newFakeRequestRepo(), newFakeBalanceRepo())

	_, err := svc.Submit(context.Background(), employeeSession("emp-1", "dept-1"), leave.SubmitLeaveRequest{})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestPendingForHODScopedToDepartment(t *testing.T) {
	requests := newFakeRequestRepo(
		pendingHODRequest("req-1", "emp-1", "dept-1", 5),
		pendingHODRequest("req-2", "emp-2", "dept-2", 3),
	)
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	listed, err := svc.PendingForHOD(context.Background(), hodSession("hod-1", "dept-1"))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "req-1", listed[0].ID)
}

func TestPendingForHODRequiresRole(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(), newFakeRequestRepo(), newFakeBalanceRepo())

	_, err := svc.PendingForHOD(context.Background(), employeeSession("emp-1", "dept-1"))
	assert.ErrorIs(t, err, user.ErrHODPrivilegeRequired)
}

func TestHODApproveMovesToPendingAdmin(t *testing.T) {
	requests := newFakeRequestRepo(pendingHODRequest("req-1", "emp-1", "dept-1", 5))
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	outcome, err := svc.HODApprove(context.Background(), hodSession("hod-1", "dept-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionApplied, outcome)

	stored := requests.requests["req-1"]
	assert.Equal(t, leave.StatusPendingAdmin, stored.Status)
	require.NotNil(t, stored.HODApprovedBy)
	assert.Equal(t, "hod-1", *stored.HODApprovedBy)
}

func TestHODRejectIsTerminal(t *testing.T) {
	requests := newFakeRequestRepo(pendingHODRequest("req-1", "emp-1", "dept-1", 5))
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	outcome, err := svc.HODReject(context.Background(), hodSession("hod-1", "dept-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionApplied, outcome)
	assert.Equal(t, leave.StatusRejected, requests.requests["req-1"].Status)

	// A rejected request cannot be revived.
	outcome, err = svc.HODApprove(context.Background(), hodSession("hod-1", "dept-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionAlreadyHandled, outcome)
}

func TestHODApproveOtherDepartment(t *testing.T) {
	requests := newFakeRequestRepo(pendingHODRequest("req-1", "emp-1", "dept-1", 5))
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	_, err := svc.HODApprove(context.Background(), hodSession("hod-2", "dept-2"), "req-1")
	assert.ErrorIs(t, err, leave.ErrDepartmentMismatch)
	assert.Equal(t, leave.StatusPendingHOD, requests.requests["req-1"].Status)
}

func TestHODApproveMissingRequest(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(), newFakeRequestRepo(), newFakeBalanceRepo())

	outcome, err := svc.HODApprove(context.Background(), hodSession("hod-1", "dept-1"), "no-such-request")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionNotFound, outcome)
}

func TestHODApproveRaceLosesCleanly(t *testing.T) {
	requests := newFakeRequestRepo(pendingHODRequest("req-1", "emp-1", "dept-1", 5))
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	first, err := svc.HODApprove(context.Background(), hodSession("hod-1", "dept-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionApplied, first)

	second, err := svc.HODApprove(context.Background(), hodSession("hod-1", "dept-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionAlreadyHandled, second)
}

func TestAdminApproveDebitsBalance(t *testing.T) {
	request := pendingHODRequest("req-1", "emp-1", "dept-1", 5)
	request.Status = leave.StatusPendingAdmin
	requests := newFakeRequestRepo(request)
	balances := newFakeBalanceRepo(leave.LeaveBalance{UserID: "emp-1", TotalEntitled: 20, RemainingDays: 14})
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, balances)

	outcome, err := svc.AdminApprove(context.Background(), adminSession("admin-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionApplied, outcome)
	assert.Equal(t, leave.StatusApproved, requests.requests["req-1"].Status)
	assert.Equal(t, 9.0, balances.balances["emp-1"].RemainingDays)
}

func TestAdminApproveClampsBalanceAtZero(t *testing.T) {
	request := pendingHODRequest("req-1", "emp-1", "dept-1", 5)
	request.Status = leave.StatusPendingAdmin
	requests := newFakeRequestRepo(request)
	balances := newFakeBalanceRepo(leave.LeaveBalance{UserID: "emp-1", TotalEntitled: 20, RemainingDays: 2})
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, balances)

	_, err := svc.AdminApprove(context.Background(), adminSession("admin-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, balances.balances["emp-1"].RemainingDays)
}

func TestAdminApproveWithoutBalanceRowStillApproves(t *testing.T) {
	request := pendingHODRequest("req-1", "emp-1", "dept-1", 5)
	request.Status = leave.StatusPendingAdmin
	requests := newFakeRequestRepo(request)
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	outcome, err := svc.AdminApprove(context.Background(), adminSession("admin-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionApplied, outcome)
	assert.Equal(t, leave.StatusApproved, requests.requests["req-1"].Status)
}

func TestAdminApproveAlreadyHandledDebitsNothing(t *testing.T) {
	request := pendingHODRequest("req-1", "emp-1", "dept-1", 5)
	request.Status = leave.StatusApproved
	requests := newFakeRequestRepo(request)
	balances := newFakeBalanceRepo(leave.LeaveBalance{UserID: "emp-1", TotalEntitled: 20, RemainingDays: 14})
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, balances)

	outcome, err := svc.AdminApprove(context.Background(), adminSession("admin-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionAlreadyHandled, outcome)
	assert.Equal(t, 14.0, balances.balances["emp-1"].RemainingDays)
}

func TestAdminApproveDebitFailureRollsUp(t *testing.T) {
	request := pendingHODRequest("req-1", "emp-1", "dept-1", 5)
	request.Status = leave.StatusPendingAdmin
	requests := newFakeRequestRepo(request)
	balances := newFakeBalanceRepo(leave.LeaveBalance{UserID: "emp-1", TotalEntitled: 20, RemainingDays: 14})
	balances.debitErr = errors.New("connection reset")
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, balances)

	_, err := svc.AdminApprove(context.Background(), adminSession("admin-1"), "req-1")
	assert.Error(t, err)
}

func TestAdminApproveRequiresRole(t *testing.T) {
	svc := newTestService(newFakeTypeRepo(), newFakeRequestRepo(), newFakeBalanceRepo())

	_, err := svc.AdminApprove(context.Background(), hodSession("hod-1", "dept-1"), "req-1")
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)
}

func TestAdminRejectStampsReviewer(t *testing.T) {
	request := pendingHODRequest("req-1", "emp-1", "dept-1", 5)
	request.Status = leave.StatusPendingAdmin
	requests := newFakeRequestRepo(request)
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	outcome, err := svc.AdminReject(context.Background(), adminSession("admin-1"), "req-1")
	require.NoError(t, err)
	assert.Equal(t, leave.TransitionApplied, outcome)

	stored := requests.requests["req-1"]
	assert.Equal(t, leave.StatusRejected, stored.Status)
	require.NotNil(t, stored.RejectedBy)
	assert.Equal(t, "admin-1", *stored.RejectedBy)
}

func TestMyRequests(t *testing.T) {
	requests := newFakeRequestRepo(
		pendingHODRequest("req-1", "emp-1", "dept-1", 5),
		pendingHODRequest("req-2", "emp-2", "dept-1", 3),
	)
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	listed, err := svc.MyRequests(context.Background(), employeeSession("emp-1", "dept-1"))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "req-1", listed[0].ID)
}

func TestPendingForAdminListsSecondStageOnly(t *testing.T) {
	first := pendingHODRequest("req-1", "emp-1", "dept-1", 5)
	second := pendingHODRequest("req-2", "emp-2", "dept-2", 3)
	second.Status = leave.StatusPendingAdmin
	requests := newFakeRequestRepo(first, second)
	svc := newTestService(newFakeTypeRepo(annualLeave), requests, newFakeBalanceRepo())

	listed, err := svc.PendingForAdmin(context.Background(), adminSession("admin-1"))
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "req-2", listed[0].ID)
}

func TestFullWorkflowSubmitToApproved(t *testing.T) {
	types := newFakeTypeRepo(annualLeave)
	requests := newFakeRequestRepo()
	balances := newFakeBalanceRepo(leave.LeaveBalance{UserID: "emp-1", TotalEntitled: 20, RemainingDays: 20, UpdatedAt: time.Now()})
	svc := newTestService(types, requests, balances)

	created, err := svc.Submit(context.Background(), employeeSession("emp-1", "dept-1"), leave.SubmitLeaveRequest{
		LeaveTypeID:  annualLeave.ID,
		StartDate:    "2024-03-04",
		EndDate:      "2024-03-06",
		DurationType: leave.DurationFullDay,
		Reason:       "trip",
	})
	require.NoError(t, err)

	// Department comes from a join in production; the fake needs it stamped.
	stored := requests.requests[created.ID]
	stored.DepartmentID = strPtr("dept-1")
	requests.requests[created.ID] = stored

	outcome, err := svc.HODApprove(context.Background(), hodSession("hod-1", "dept-1"), created.ID)
	require.NoError(t, err)
	require.Equal(t, leave.TransitionApplied, outcome)

	outcome, err = svc.AdminApprove(context.Background(), adminSession("admin-1"), created.ID)
	require.NoError(t, err)
	require.Equal(t, leave.TransitionApplied, outcome)

	assert.Equal(t, leave.StatusApproved, requests.requests[created.ID].Status)
	assert.Equal(t, 17.0, balances.balances["emp-1"].RemainingDays)

	summary := svc.Summarize(context.Background(), "emp-1")
	assert.Equal(t, 20.0, summary.Total)
	assert.Equal(t, 3.0, summary.Used)
	assert.Equal(t, 17.0, summary.Remaining)
	assert.Equal(t, 0, summary.Pending)
}
