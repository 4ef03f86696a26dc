package auth

import (
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/origin8hq/lms-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SessionTrackingRequest carries client metadata stored alongside refresh
// tokens for session auditing.
type SessionTrackingRequest struct {
	IPAddress string
	UserAgent string
}

type TokenResponse struct {
	AccessToken           string            `json:"access_token"`
	AccessTokenExpiresIn  int64             `json:"access_token_expires_in"`
	RefreshToken          string            `json:"-"`
	RefreshTokenExpiresIn int64             `json:"-"`
	Profile               SessionProfile    `json:"profile"`
	Capabilities          user.Capabilities `json:"capabilities"`
}

// SessionProfile is the display subset of a profile the frontend needs to
// bootstrap its role-gated navigation.
type SessionProfile struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         user.Role `json:"role"`
	DepartmentID *string   `json:"department_id,omitempty"`
}
