package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/auth"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/origin8hq/lms-backend-go/internal/pkg/database"
	"github.com/origin8hq/lms-backend-go/internal/pkg/jwt"
	"github.com/origin8hq/lms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	db       *database.DB
	profiles user.ProfileRepository
	tokens   postgresql.RefreshTokenRepository
	jwt      jwt.Service

	// withTx runs fn inside a database transaction, with the transaction
	// threaded through the context for the repositories. Swappable in tests.
	withTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(db *database.DB, profiles user.ProfileRepository, tokens postgresql.RefreshTokenRepository, jwtService jwt.Service) *Service {
	return &Service{
		db:       db,
		profiles: profiles,
		tokens:   tokens,
		jwt:      jwtService,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

var _ auth.AuthService = (*Service)(nil)

// Login implements auth.AuthService.
func (s *Service) Login(ctx context.Context, req auth.LoginRequest, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	profile, err := s.profiles.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get profile by email: %w", err)
	}

	// Google-only accounts have no password hash.
	if profile.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*profile.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, profile, track)
}

// LoginWithGoogle implements auth.AuthService. Accounts are provisioned by
// admins, so an email Google verified but we have never seen is rejected
// rather than auto-created.
func (s *Service) LoginWithGoogle(ctx context.Context, email string, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	profile, err := s.profiles.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrUnknownGoogleAccount
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return s.issueTokens(ctx, profile, track)
}

// Refresh implements auth.AuthService. Refresh tokens are single use: the
// presented token is revoked and a fresh pair is issued in its place.
func (s *Service) Refresh(ctx context.Context, refreshToken string, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	userID, err := s.jwt.DecodeRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return auth.TokenResponse{}, auth.ErrTokenExpired
		}
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := s.tokens.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		// A token we never stored is not ours, however valid its signature.
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token revocation: %w", err)
	}
	if revoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get profile by id: %w", err)
	}

	var tokenResponse auth.TokenResponse
	err = s.withTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		tokenResponse, err = s.buildTokenResponse(txCtx, profile, track)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if _, err := s.jwt.DecodeRefreshToken(refreshToken); err != nil {
		// An expired session needs no revocation.
		if errors.Is(err, jwtauth.ErrExpired) {
			return nil
		}
		return auth.ErrInvalidToken
	}

	revoked, err := s.tokens.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("failed to check refresh token revocation: %w", err)
	}
	if revoked {
		return nil
	}

	if err := s.tokens.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *Service) issueTokens(ctx context.Context, profile user.Profile, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	err := s.withTx(ctx, func(txCtx context.Context) error {
		var err error
		tokenResponse, err = s.buildTokenResponse(txCtx, profile, track)
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

func (s *Service) buildTokenResponse(ctx context.Context, profile user.Profile, track auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = s.jwt.GenerateAccessToken(profile.ID, profile.Email, profile.Role, profile.DepartmentID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = s.jwt.GenerateRefreshToken(profile.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	if err := s.tokens.CreateRefreshToken(ctx, profile.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, track); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save refresh token to database: %w", err)
	}

	tokenResponse.Profile = auth.SessionProfile{
		ID:           profile.ID,
		FullName:     profile.FullName,
		Email:        profile.Email,
		Role:         profile.Role,
		DepartmentID: profile.DepartmentID,
	}
	tokenResponse.Capabilities = user.CapabilitiesFor(profile.Role)

	return tokenResponse, nil
}
