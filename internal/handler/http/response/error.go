package response

import (
	"errors"
	"net/http"

	"github.com/origin8hq/lms-backend-go/internal/domain/auth"
	"github.com/origin8hq/lms-backend-go/internal/domain/department"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/origin8hq/lms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token cookie not found")
	case errors.Is(err, auth.ErrUnknownGoogleAccount):
		Forbidden(w, "Google account is not registered")

	// User domain errors
	case errors.Is(err, user.ErrProfileNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrDepartmentRequired):
		BadRequest(w, "Department is required for this role", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrHODPrivilegeRequired):
		Forbidden(w, "Head of department privilege required")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrDurationNotAllowed):
		BadRequest(w, "Leave type does not allow this duration", nil)
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, "End date is before start date", nil)
	case errors.Is(err, leave.ErrInvalidHours):
		BadRequest(w, "Hours must be greater than zero and at most a full workday", nil)
	case errors.Is(err, leave.ErrNoWorkingDays):
		BadRequest(w, "Requested range contains no working days", nil)
	case errors.Is(err, leave.ErrDepartmentMismatch):
		Forbidden(w, "Request belongs to another department")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
