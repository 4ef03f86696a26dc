package user

import "context"

// DirectoryService covers the admin provisioning console: account creation,
// listing and removal. Routes calling into it are admin-gated by middleware.
type DirectoryService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (Profile, error)
	ListUsers(ctx context.Context) ([]ProfileResponse, error)
	DeleteUser(ctx context.Context, id string) error
}
