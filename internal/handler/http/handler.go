package http

import (
	"time"

	"github.com/MKhiriev/go-users-posts/internal/config"
	"github.com/MKhiriev/go-users-posts/internal/logger"
	"github.com/MKhiriev/go-users-posts/internal/service"
	"github.com/MKhiriev/go-users-posts/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	requestTimeout time.Duration
	hideStack      bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewUserPostValidator(),
		requestTimeout: cfg.RequestTimeout,
		hideStack:      cfg.HideStack,
		logger:         logger,
	}
}
