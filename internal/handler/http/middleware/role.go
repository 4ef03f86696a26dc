package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/origin8hq/lms-backend-go/internal/handler/http/response"
)

// RequireHOD admits roles allowed to review at the first approval stage.
func RequireHOD(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrHODPrivilegeRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrHODPrivilegeRequired)
			return
		}

		if !user.CapabilitiesFor(user.Role(roleStr)).CanReviewAsHOD {
			response.HandleError(w, user.ErrHODPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin admits roles allowed final review and account management.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		if !user.CapabilitiesFor(user.Role(roleStr)).CanReviewAsAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
