package leave

import "errors"

var (
	ErrLeaveTypeNotFound  = errors.New("Leave type not found")
	ErrDurationNotAllowed = errors.New("Duration mode not allowed for this leave type")
	ErrEndBeforeStart     = errors.New("End date cannot precede start date")
	ErrInvalidHours       = errors.New("Hours must be greater than 0 and at most 8")
	ErrNoWorkingDays      = errors.New("Requested range contains no working days")
	ErrDepartmentMismatch = errors.New("Leave request belongs to another department")
)
