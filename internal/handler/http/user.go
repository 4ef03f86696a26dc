package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/origin8hq/lms-backend-go/internal/domain/user"
	"github.com/origin8hq/lms-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	CreateUser(w http.ResponseWriter, r *http.Request)
	ListUsers(w http.ResponseWriter, r *http.Request)
	DeleteUser(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	directoryService user.DirectoryService
}

func NewUserHandler(directoryService user.DirectoryService) UserHandler {
	return &UserHandlerImpl{directoryService: directoryService}
}

// CreateUser implements UserHandler.
func (u *UserHandlerImpl) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateUser decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := u.directoryService.CreateUser(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("User account created", "user_id", profile.ID, "role", profile.Role)
	response.Created(w, "User created successfully", user.ToProfileResponse(profile))
}

// ListUsers implements UserHandler.
func (u *UserHandlerImpl) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := u.directoryService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// DeleteUser implements UserHandler.
func (u *UserHandlerImpl) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	if err := u.directoryService.DeleteUser(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("User account deleted", "user_id", id)
	response.SuccessWithMessage(w, "User deleted successfully", nil)
}
