package user

import (
	"time"

	"github.com/origin8hq/lms-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Role         Role    `json:"role"`
	DepartmentID *string `json:"department_id,omitempty"`
	LeaveBalance float64 `json:"leave_balance"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid address",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if !ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of employee, hod, admin",
		})
	}
	if r.LeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_balance",
			Message: "leave_balance must not be negative",
		})
	}
	// Admins sit outside the department hierarchy; everyone else needs one.
	if r.Role != RoleAdmin && ValidRole(r.Role) {
		if r.DepartmentID == nil || validator.IsEmpty(*r.DepartmentID) {
			errs = append(errs, validator.ValidationError{
				Field:   "department_id",
				Message: "department_id is required for employee and hod roles",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	DepartmentID   *string   `json:"department_id,omitempty"`
	DepartmentName *string   `json:"department_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		FullName:       p.FullName,
		Email:          p.Email,
		Role:           p.Role,
		DepartmentID:   p.DepartmentID,
		DepartmentName: p.DepartmentName,
		CreatedAt:      p.CreatedAt,
	}
}
