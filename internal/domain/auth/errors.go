package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("Invalid email or password")
	ErrInvalidToken               = errors.New("Invalid or malformed token")
	ErrTokenExpired               = errors.New("Token expired")
	ErrRefreshTokenRevoked        = errors.New("Refresh token revoked")
	ErrRefreshTokenCookieNotFound = errors.New("Refresh token cookie not found")
	ErrUnknownGoogleAccount       = errors.New("No account registered for this Google email")
)
