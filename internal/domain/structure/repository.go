package structure

import (
	"context"
)

type StructureRepository interface {
	List(ctx context.Context) ([]SalaryStructure, error)
	GetByID(ctx context.Context, id string) (SalaryStructure, error)
	GetByScale(ctx context.Context, scale string) (SalaryStructure, error)
	Create(ctx context.Context, s SalaryStructure) (SalaryStructure, error)
	Update(ctx context.Context, s SalaryStructure) error
	Delete(ctx context.Context, id string) error
}
