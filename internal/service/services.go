package service

import (
	"github.com/MKhiriev/go-users-posts/internal/config"
	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/store"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, storages, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserService(storages.UserRepository, storages.PostRepository, logger)

	return &Services{
		UserService:    NewUserValidationService().Wrap(userService),
		AppInfoService: appInfoService,
	}, nil
}
