package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, track SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, email string, track SessionTrackingRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string, track SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
