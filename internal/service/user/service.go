package user

import (
	"context"
	"fmt"

	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

// TxRunner runs a function inside a storage transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserServiceImpl struct {
	tx          TxRunner
	userRepo    user.UserRepository
	teacherRepo teacher.TeacherRepository
}

func NewUserService(tx TxRunner, userRepo user.UserRepository, teacherRepo teacher.TeacherRepository) user.UserService {
	return &UserServiceImpl{
		tx:          tx,
		userRepo:    userRepo,
		teacherRepo: teacherRepo,
	}
}

func callerIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToUserResponse(u))
	}

	return responses, nil
}

// Create adds a user account. A teacher-role account also gets a teacher
// record with a fresh employee id, in the same transaction.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created user.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.userRepo.Create(txCtx, user.User{
			Username:           req.Username,
			PasswordHash:       string(hash),
			Role:               user.Role(req.Role),
			FullName:           req.FullName,
			Email:              req.Email,
			Phone:              req.Phone,
			IsActive:           true,
			MustChangePassword: true,
		})
		if err != nil {
			return err
		}

		if created.Role != user.RoleTeacher {
			return nil
		}

		employeeID, err := NextEmployeeID(txCtx, s.teacherRepo)
		if err != nil {
			return err
		}
		_, err = s.teacherRepo.Create(txCtx, teacher.Teacher{
			UserID:      &created.ID,
			EmployeeID:  employeeID,
			FullName:    req.FullName,
			Email:       req.Email,
			Phone:       req.Phone,
			SalaryScale: "Scale_1",
			IsActive:    true,
		})
		return err
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(created), nil
}

// NextEmployeeID allocates the next TCH-prefixed code from the roster size.
func NextEmployeeID(ctx context.Context, repo teacher.TeacherRepository) (string, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("TCH%04d", count+1), nil
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Email != nil {
		u.Email = req.Email
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(u), nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		return err
	}
	if callerID == id {
		return user.ErrSelfDelete
	}

	return s.userRepo.Delete(ctx, id)
}

func (s *UserServiceImpl) ResetPassword(ctx context.Context, req user.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	// A reset password must be changed on next login
	return s.userRepo.UpdatePassword(ctx, req.ID, string(hash), true)
}

func (s *UserServiceImpl) ToggleStatus(ctx context.Context, id string) (user.UserResponse, error) {
	callerID, err := callerIDFromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if callerID == id && u.IsActive {
		return user.UserResponse{}, user.ErrSelfDeactivate
	}

	u.IsActive = !u.IsActive
	if err := s.userRepo.SetActive(ctx, id, u.IsActive); err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(u), nil
}
