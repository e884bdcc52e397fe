package service

import (
	"github.com/simpleblog/backend/internal/config"
	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/internal/store"
)

// Services aggregates all business-logic services handed to the transport
// layer.
type Services struct {
	AuthService AuthService
	BlogService BlogService
}

// NewServices constructs every service on top of the given storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, logger),
		BlogService: NewBlogService(storages.BlogRepository, logger),
	}
}
