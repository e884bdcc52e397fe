package http

import (
	"github.com/simpleblog/backend/internal/config"
	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      *config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
