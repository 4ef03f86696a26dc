package http

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/auth"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
)

// sessionFromContext rebuilds the authenticated caller from the verified
// token claims. AuthRequired runs first on every route that calls this, so
// missing or malformed claims here mean a forged token.
func sessionFromContext(ctx context.Context) (auth.Session, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.Session{}, auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Session{}, auth.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	roleStr, ok := claims["role"].(string)
	if !ok {
		return auth.Session{}, auth.ErrInvalidToken
	}

	sess := auth.Session{
		UserID: userID,
		Email:  email,
		Role:   user.Role(roleStr),
	}
	if departmentID, ok := claims["department_id"].(string); ok && departmentID != "" {
		sess.DepartmentID = &departmentID
	}

	return sess, nil
}
