package sysconfig

import (
	"context"

	"github.com/edupay/edupay-backend-go/internal/domain/sysconfig"
)

type ConfigServiceImpl struct {
	configRepo sysconfig.ConfigRepository
}

func NewConfigService(configRepo sysconfig.ConfigRepository) sysconfig.Service {
	return &ConfigServiceImpl{configRepo: configRepo}
}

func (s *ConfigServiceImpl) GetAll(ctx context.Context) (map[string]string, error) {
	return s.configRepo.GetAll(ctx)
}

func (s *ConfigServiceImpl) Update(ctx context.Context, settings map[string]string) (map[string]string, error) {
	for key, value := range settings {
		if err := s.configRepo.Set(ctx, key, value); err != nil {
			return nil, err
		}
	}

	return s.configRepo.GetAll(ctx)
}
