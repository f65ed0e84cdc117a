package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/edupay/edupay-backend-go/internal/domain/audit"
	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"github.com/edupay/edupay-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService  user.AuthService
	auditService audit.Service
}

func NewAuthHandler(authService user.AuthService, auditService audit.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService:  authService,
		auditService: auditService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq user.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		a.auditService.RecordFor(r.Context(), loginReq.Username, "LOGIN_FAILED",
			fmt.Sprintf("Failed login attempt for %s", loginReq.Username), r.RemoteAddr)
		response.HandleError(w, err)
		return
	}

	a.auditService.RecordFor(r.Context(), loginReq.Username, "LOGIN", "User logged in", r.RemoteAddr)
	slog.Info("User logged in successfully", "username", loginReq.Username)
	response.SuccessWithMessage(w, "User logged in successfully", loginResp)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var changeReq user.ChangePasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := changeReq.Validate(); err != nil {
		slog.Error("ChangePassword validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	if err := a.authService.ChangePassword(r.Context(), changeReq); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	a.auditService.Record(r.Context(), "CHANGE_PASSWORD", "User changed their password", r.RemoteAddr)
	slog.Info("Password changed successfully")
	response.SuccessWithMessage(w, "Password has been changed successfully", nil)
}
