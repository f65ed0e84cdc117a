package teacher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/edupay/edupay-backend-go/internal/domain/teacher"
	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is issued to provisioned teacher accounts; the account is
// flagged must_change_password.
const DefaultPassword = "teacher123"

// TxRunner runs a function inside a storage transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type TeacherServiceImpl struct {
	tx          TxRunner
	teacherRepo teacher.TeacherRepository
	userRepo    user.UserRepository
}

func NewTeacherService(tx TxRunner, teacherRepo teacher.TeacherRepository, userRepo user.UserRepository) teacher.TeacherService {
	return &TeacherServiceImpl{
		tx:          tx,
		teacherRepo: teacherRepo,
		userRepo:    userRepo,
	}
}

func (s *TeacherServiceImpl) List(ctx context.Context) ([]teacher.TeacherResponse, error) {
	teachers, err := s.teacherRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]teacher.TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		responses = append(responses, teacher.ToTeacherResponse(t))
	}

	return responses, nil
}

func (s *TeacherServiceImpl) ListCompensation(ctx context.Context) ([]teacher.CompensationResponse, error) {
	comps, err := s.teacherRepo.ListActiveCompensation(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]teacher.CompensationResponse, 0, len(comps))
	for _, c := range comps {
		responses = append(responses, teacher.ToCompensationResponse(c))
	}

	return responses, nil
}

func (s *TeacherServiceImpl) Get(ctx context.Context, id string) (teacher.TeacherResponse, error) {
	t, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}
	return teacher.ToTeacherResponse(t), nil
}

// Create registers a teacher and provisions a login account for them in the
// same transaction. The generated username is derived from the full name.
func (s *TeacherServiceImpl) Create(ctx context.Context, req teacher.CreateTeacherRequest) (teacher.CreateTeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.CreateTeacherResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return teacher.CreateTeacherResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var created teacher.Teacher
	var username string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		username, err = s.generateUsername(txCtx, req.FullName)
		if err != nil {
			return err
		}

		account, err := s.userRepo.Create(txCtx, user.User{
			Username:           username,
			PasswordHash:       string(hash),
			Role:               user.RoleTeacher,
			FullName:           req.FullName,
			Email:              req.Email,
			Phone:              req.Phone,
			IsActive:           true,
			MustChangePassword: true,
		})
		if err != nil {
			return err
		}

		count, err := s.teacherRepo.Count(txCtx)
		if err != nil {
			return err
		}

		scale := req.SalaryScale
		if scale == "" {
			scale = "Scale_1"
		}

		var dateJoined *time.Time
		if req.DateJoined != nil && *req.DateJoined != "" {
			d, err := time.Parse(time.DateOnly, *req.DateJoined)
			if err != nil {
				return fmt.Errorf("invalid date_joined: %w", err)
			}
			dateJoined = &d
		}

		created, err = s.teacherRepo.Create(txCtx, teacher.Teacher{
			UserID:      &account.ID,
			EmployeeID:  fmt.Sprintf("TCH%04d", count+1),
			FullName:    req.FullName,
			Email:       req.Email,
			Phone:       req.Phone,
			Position:    req.Position,
			SalaryScale: scale,
			DateJoined:  dateJoined,
			IsActive:    true,
		})
		return err
	})
	if err != nil {
		return teacher.CreateTeacherResponse{}, err
	}

	return teacher.CreateTeacherResponse{
		Teacher:         teacher.ToTeacherResponse(created),
		Username:        username,
		DefaultPassword: DefaultPassword,
	}, nil
}

// generateUsername lowercases the name into dotted form and suffixes a
// counter until the username is free.
func (s *TeacherServiceImpl) generateUsername(ctx context.Context, fullName string) (string, error) {
	base := strings.ToLower(strings.Join(strings.Fields(fullName), "."))
	if base == "" {
		base = "teacher"
	}

	candidate := base
	for i := 1; ; i++ {
		exists, err := s.userRepo.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

// Update edits the teacher record and keeps the linked account's contact
// fields in sync.
func (s *TeacherServiceImpl) Update(ctx context.Context, req teacher.UpdateTeacherRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	var t teacher.Teacher
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		t, err = s.teacherRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if req.FullName != nil {
			t.FullName = *req.FullName
		}
		if req.Email != nil {
			t.Email = req.Email
		}
		if req.Phone != nil {
			t.Phone = req.Phone
		}
		if req.Position != nil {
			t.Position = req.Position
		}
		if req.SalaryScale != nil {
			t.SalaryScale = *req.SalaryScale
		}
		if req.IsActive != nil {
			t.IsActive = *req.IsActive
		}

		if err := s.teacherRepo.Update(txCtx, t); err != nil {
			return err
		}

		if t.UserID == nil {
			return nil
		}

		account, err := s.userRepo.GetByID(txCtx, *t.UserID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return nil
			}
			return err
		}
		account.FullName = t.FullName
		account.Email = t.Email
		account.Phone = t.Phone
		return s.userRepo.Update(txCtx, account)
	})
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return teacher.ToTeacherResponse(t), nil
}

// Delete removes the teacher and their linked account.
func (s *TeacherServiceImpl) Delete(ctx context.Context, id string) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.teacherRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if err := s.teacherRepo.Delete(txCtx, id); err != nil {
			return err
		}

		if t.UserID != nil {
			if err := s.userRepo.Delete(txCtx, *t.UserID); err != nil && !errors.Is(err, user.ErrUserNotFound) {
				return err
			}
		}
		return nil
	})
}

func (s *TeacherServiceImpl) Profile(ctx context.Context) (teacher.TeacherResponse, error) {
	t, err := s.callerTeacher(ctx)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}
	return teacher.ToTeacherResponse(t), nil
}

func (s *TeacherServiceImpl) UpdateProfile(ctx context.Context, req teacher.UpdateProfileRequest) (teacher.TeacherResponse, error) {
	if err := req.Validate(); err != nil {
		return teacher.TeacherResponse{}, err
	}

	t, err := s.callerTeacher(ctx)
	if err != nil {
		return teacher.TeacherResponse{}, err
	}

	return s.Update(ctx, teacher.UpdateTeacherRequest{
		ID:    t.ID,
		Email: req.Email,
		Phone: req.Phone,
	})
}

func (s *TeacherServiceImpl) callerTeacher(ctx context.Context) (teacher.Teacher, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return teacher.Teacher{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return teacher.Teacher{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	return s.teacherRepo.GetByUserID(ctx, userID)
}
