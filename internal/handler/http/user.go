package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/audit"
	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	ToggleStatus(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService  user.UserService
	auditService audit.Service
}

func NewUserHandler(userService user.UserService, auditService audit.Service) UserHandler {
	return &UserHandlerImpl{
		userService:  userService,
		auditService: auditService,
	}
}

// List implements UserHandler.
func (h *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Create implements UserHandler.
func (h *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		slog.Error("Create user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.userService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "CREATE_USER",
		fmt.Sprintf("Created user %s with role %s", created.Username, created.Role), r.RemoteAddr)
	slog.Info("User created successfully", "username", created.Username)
	response.Created(w, "User created successfully", created)
}

// Update implements UserHandler.
func (h *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		slog.Error("Update user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.userService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "UPDATE_USER",
		fmt.Sprintf("Updated user %s", updated.Username), r.RemoteAddr)
	response.SuccessWithMessage(w, "User updated successfully", updated)
}

// Delete implements UserHandler.
func (h *UserHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.userService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "DELETE_USER",
		fmt.Sprintf("Deleted user %s", id), r.RemoteAddr)
	response.SuccessWithMessage(w, "User deleted successfully", nil)
}

// ResetPassword implements UserHandler.
func (h *UserHandlerImpl) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var resetReq user.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&resetReq); err != nil {
		slog.Error("Reset password decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	resetReq.ID = chi.URLParam(r, "id")

	if err := resetReq.Validate(); err != nil {
		slog.Error("Reset password validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := h.userService.ResetPassword(r.Context(), resetReq); err != nil {
		slog.Error("Reset password service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "RESET_PASSWORD",
		fmt.Sprintf("Reset password for user %s", resetReq.ID), r.RemoteAddr)
	response.SuccessWithMessage(w, "Password has been reset successfully", nil)
}

// ToggleStatus implements UserHandler.
func (h *UserHandlerImpl) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	updated, err := h.userService.ToggleStatus(r.Context(), id)
	if err != nil {
		slog.Error("Toggle user status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	h.auditService.Record(r.Context(), "TOGGLE_USER_STATUS",
		fmt.Sprintf("Set user %s active=%t", updated.Username, updated.IsActive), r.RemoteAddr)
	response.SuccessWithMessage(w, "User status updated successfully", updated)
}
