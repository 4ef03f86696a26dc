package user

import "errors"

var (
	ErrProfileNotFound        = errors.New("Profile not found")
	ErrEmailExists            = errors.New("Email already registered")
	ErrDepartmentRequired     = errors.New("Department is required for this role")
	ErrAdminPrivilegeRequired = errors.New("Admin privilege required")
	ErrHODPrivilegeRequired   = errors.New("HOD privilege required")
)
