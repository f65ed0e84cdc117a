package structure

import (
	"context"
)

type StructureService interface {
	List(ctx context.Context) ([]StructureResponse, error)
	// Save inserts a new scale or updates the existing one with the same name.
	Save(ctx context.Context, req SaveStructureRequest) (StructureResponse, error)
	Delete(ctx context.Context, id string) error
}
