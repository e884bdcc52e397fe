package store

import (
	"github.com/simpleblog/backend/internal/logger"
)

// Storages aggregates all repositories backed by the shared database
// connection. It is the single persistence entry point handed to the
// service layer (dependency injection, no package-level singletons).
type Storages struct {
	UserRepository UserRepository
	BlogRepository BlogRepository
}

// NewStorages constructs every repository on top of the given database
// connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		BlogRepository: NewBlogRepository(db, logger),
	}
}
