package service

import (
	"context"

	"github.com/simpleblog/backend/models"
)

// AuthService owns the credential lifecycle: account creation, password
// verification, profile access, and JWT issue/verify.
type AuthService interface {
	RegisterUser(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
}

// BlogService owns post and comment operations.
type BlogService interface {
	CreateBlog(ctx context.Context, title, content string) (models.Blog, error)
	GetBlog(ctx context.Context, blogID int64) (models.Blog, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	UpdateBlog(ctx context.Context, blogID int64, update models.BlogUpdate) (models.Blog, error)
	DeleteBlog(ctx context.Context, blogID int64) error
	AddComment(ctx context.Context, blogID, userID int64, text string) (models.Comment, error)
	ListComments(ctx context.Context, blogID int64) ([]models.Comment, error)
}
