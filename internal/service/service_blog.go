package service

import (
	"context"
	"fmt"

	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/internal/store"
	"github.com/simpleblog/backend/models"
)

// blogService is the concrete implementation of BlogService.
// Posts carry no owner so mutation requires only an authenticated caller;
// comment authorship is fixed by the access-guard-resolved user ID.
type blogService struct {
	blogRepository store.BlogRepository
	logger         *logger.Logger
}

// NewBlogService constructs a BlogService wired to the given BlogRepository.
func NewBlogService(blogRepository store.BlogRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		logger:         logger,
	}
}

// CreateBlog persists a new post.
//
// Returns ErrInvalidDataProvided if title or content is empty, otherwise the
// stored post including its generated identifier.
func (b *blogService) CreateBlog(ctx context.Context, title, content string) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if title == "" || content == "" {
		log.Error().Msg("blog creation with empty title or content")
		return models.Blog{}, ErrInvalidDataProvided
	}

	created, err := b.blogRepository.CreateBlog(ctx, models.Blog{Title: title, Content: content})
	if err != nil {
		log.Err(err).Msg("blog creation ended with error")
		return models.Blog{}, fmt.Errorf("blog creation ended with error: %w", err)
	}

	return created, nil
}

// GetBlog returns a single post with its comment thread embedded.
// Author display fields of each comment are resolved by the repository join.
func (b *blogService) GetBlog(ctx context.Context, blogID int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blog, err := b.blogRepository.GetBlog(ctx, blogID)
	if err != nil {
		return models.Blog{}, fmt.Errorf("blog lookup failed: %w", err)
	}

	comments, err := b.blogRepository.GetComments(ctx, blogID)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("comment lookup failed")
		return models.Blog{}, fmt.Errorf("comment lookup failed: %w", err)
	}
	blog.Comments = comments

	return blog, nil
}

// ListBlogs returns every post without comment bodies.
func (b *blogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs, err := b.blogRepository.GetAllBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("blog listing failed: %w", err)
	}

	return blogs, nil
}

// UpdateBlog applies a partial update of title/content to an existing post.
//
// Returns ErrInvalidDataProvided if no field is supplied or a supplied field
// is empty; a missing post surfaces as store.ErrBlogNotFound.
func (b *blogService) UpdateBlog(ctx context.Context, blogID int64, update models.BlogUpdate) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if update.Title == nil && update.Content == nil {
		return models.Blog{}, ErrInvalidDataProvided
	}
	if update.Title != nil && *update.Title == "" {
		return models.Blog{}, ErrInvalidDataProvided
	}
	if update.Content != nil && *update.Content == "" {
		return models.Blog{}, ErrInvalidDataProvided
	}

	updated, err := b.blogRepository.UpdateBlog(ctx, blogID, update)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog update failed")
		return models.Blog{}, fmt.Errorf("blog update failed: %w", err)
	}

	return updated, nil
}

// DeleteBlog removes a post together with its comments.
func (b *blogService) DeleteBlog(ctx context.Context, blogID int64) error {
	log := logger.FromContext(ctx)

	if err := b.blogRepository.DeleteBlog(ctx, blogID); err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog deletion failed")
		return fmt.Errorf("blog deletion failed: %w", err)
	}

	return nil
}

// AddComment appends a comment authored by userID to the post's thread.
// The author is always the guard-resolved subject, never client-supplied.
//
// Returns ErrInvalidDataProvided on empty text; a missing post surfaces as
// store.ErrBlogNotFound via the referential constraint.
func (b *blogService) AddComment(ctx context.Context, blogID, userID int64, text string) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if text == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}

	comment, err := b.blogRepository.AddComment(ctx, models.Comment{
		BlogID: blogID,
		UserID: userID,
		Text:   text,
	})
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return comment, nil
}

// ListComments returns a post's comment thread in insertion order with
// author display fields resolved.
//
// A missing post yields store.ErrBlogNotFound (distinguished from an empty
// thread by an explicit existence check).
func (b *blogService) ListComments(ctx context.Context, blogID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	if _, err := b.blogRepository.GetBlog(ctx, blogID); err != nil {
		return nil, fmt.Errorf("blog lookup failed: %w", err)
	}

	comments, err := b.blogRepository.GetComments(ctx, blogID)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("comment lookup failed")
		return nil, fmt.Errorf("comment lookup failed: %w", err)
	}

	return comments, nil
}
