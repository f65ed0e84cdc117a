package sysconfig

import (
	"context"
)

type Service interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, settings map[string]string) (map[string]string, error)
}
