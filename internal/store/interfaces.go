package store

import (
	"context"

	"github.com/simpleblog/backend/models"
)

// UserRepository is the data-access contract of the credential store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

// BlogRepository is the data-access contract of the content store.
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	GetBlog(ctx context.Context, blogID int64) (models.Blog, error)
	GetAllBlogs(ctx context.Context) ([]models.Blog, error)
	UpdateBlog(ctx context.Context, blogID int64, update models.BlogUpdate) (models.Blog, error)
	DeleteBlog(ctx context.Context, blogID int64) error
	AddComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	GetComments(ctx context.Context, blogID int64) ([]models.Comment, error)
}
