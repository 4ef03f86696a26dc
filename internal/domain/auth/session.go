package auth

import "github.com/origin8hq/lms-backend-go/internal/domain/user"

// Session is the authenticated caller, rebuilt from verified token claims on
// every request and passed explicitly into services. There is no ambient
// current-user state anywhere below the handler layer.
type Session struct {
	UserID       string
	Email        string
	Role         user.Role
	DepartmentID *string
}

// Capabilities returns the capability set for the session's role.
func (s Session) Capabilities() user.Capabilities {
	return user.CapabilitiesFor(s.Role)
}
