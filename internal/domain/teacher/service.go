package teacher

import (
	"context"
)

type TeacherService interface {
	List(ctx context.Context) ([]TeacherResponse, error)
	ListCompensation(ctx context.Context) ([]CompensationResponse, error)
	Get(ctx context.Context, id string) (TeacherResponse, error)
	Create(ctx context.Context, req CreateTeacherRequest) (CreateTeacherResponse, error)
	Update(ctx context.Context, req UpdateTeacherRequest) (TeacherResponse, error)
	Delete(ctx context.Context, id string) error

	// Teacher self-service
	Profile(ctx context.Context) (TeacherResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (TeacherResponse, error)
}
