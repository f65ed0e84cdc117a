package teacher

import (
	"context"
)

type TeacherRepository interface {
	List(ctx context.Context) ([]Teacher, error)
	GetByID(ctx context.Context, id string) (Teacher, error)
	GetByUserID(ctx context.Context, userID string) (Teacher, error)
	Create(ctx context.Context, t Teacher) (Teacher, error)
	Update(ctx context.Context, t Teacher) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
	// ListActiveCompensation left-joins active teachers to their salary
	// structures; a missing structure yields zero components.
	ListActiveCompensation(ctx context.Context) ([]Compensation, error)
}
