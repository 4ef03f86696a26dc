package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/department"
	"github.com/origin8hq/lms-backend-go/internal/domain/leave"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/origin8hq/lms-backend-go/internal/pkg/database"
	"github.com/origin8hq/lms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// defaultAnnualEntitlement seeds the balance of accounts created without an
// explicit leave_balance.
const defaultAnnualEntitlement = 20

type Service struct {
	db          *database.DB
	profiles    user.ProfileRepository
	departments department.DepartmentRepository
	balances    leave.LeaveBalanceRepository

	// withTx runs fn inside a database transaction, with the transaction
	// threaded through the context for the repositories. Swappable in tests.
	withTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewService(db *database.DB, profiles user.ProfileRepository, departments department.DepartmentRepository, balances leave.LeaveBalanceRepository) *Service {
	return &Service{
		db:          db,
		profiles:    profiles,
		departments: departments,
		balances:    balances,
		withTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
				return fn(context.WithValue(ctx, "tx", tx))
			})
		},
	}
}

var _ user.DirectoryService = (*Service)(nil)

// CreateUser implements user.DirectoryService. The profile and its seeded
// leave balance are written in one transaction so no account ever exists
// without a balance row.
func (s *Service) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.Profile, error) {
	if err := req.Validate(); err != nil {
		return user.Profile{}, err
	}

	_, err := s.profiles.GetByEmail(ctx, req.Email)
	if err == nil {
		return user.Profile{}, user.ErrEmailExists
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return user.Profile{}, fmt.Errorf("failed to check email availability: %w", err)
	}

	if req.DepartmentID != nil {
		if _, err := s.departments.GetByID(ctx, *req.DepartmentID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return user.Profile{}, department.ErrDepartmentNotFound
			}
			return user.Profile{}, fmt.Errorf("failed to get department: %w", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	entitlement := req.LeaveBalance
	if entitlement == 0 {
		entitlement = defaultAnnualEntitlement
	}

	profile := user.Profile{
		ID:           uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
	}

	err = s.withTx(ctx, func(txCtx context.Context) error {
		created, err := s.profiles.Create(txCtx, profile)
		if err != nil {
			return fmt.Errorf("failed to create profile: %w", err)
		}
		profile = created

		_, err = s.balances.Create(txCtx, leave.LeaveBalance{
			UserID:        profile.ID,
			TotalEntitled: entitlement,
			RemainingDays: entitlement,
			UpdatedAt:     time.Now(),
		})
		if err != nil {
			return fmt.Errorf("failed to seed leave balance: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.Profile{}, err
	}

	return profile, nil
}

// ListUsers implements user.DirectoryService.
func (s *Service) ListUsers(ctx context.Context) ([]user.ProfileResponse, error) {
	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	responses := make([]user.ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		responses = append(responses, user.ToProfileResponse(p))
	}
	return responses, nil
}

// DeleteUser implements user.DirectoryService.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := s.profiles.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrProfileNotFound
		}
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
