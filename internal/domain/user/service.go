package user

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}

type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	ToggleStatus(ctx context.Context, id string) (UserResponse, error)
}
