package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/models"
)

// blogRepository is the PostgreSQL-backed implementation of [BlogRepository].
// It owns the "blogs" and "comments" tables; comments never exist without
// their post (ON DELETE CASCADE).
type blogRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBlogRepository constructs a [BlogRepository] backed by the provided
// database connection and logger.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBlog persists a new post and returns it with server-assigned fields
// (BlogID, CreatedAt, UpdatedAt).
func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBlog, blog.Title, blog.Content)

	var created models.Blog
	if err := row.Scan(&created.BlogID, &created.Title, &created.Content,
		&created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("unexpected DB error")
		return models.Blog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetBlog retrieves a single post by identifier. Comments are not loaded
// here; callers that need the thread use [GetComments].
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrBlogNotFound].
func (r *blogRepository) GetBlog(ctx context.Context, blogID int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getBlog, blogID)

	var found models.Blog
	if err := row.Scan(&found.BlogID, &found.Title, &found.Content,
		&found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, ErrBlogNotFound
		}
		log.Err(err).Str("func", "*blogRepository.GetBlog").Msg("unexpected DB error")
		return models.Blog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllBlogs returns every post ordered by identifier.
func (r *blogRepository) GetAllBlogs(ctx context.Context) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllBlogs)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.GetAllBlogs").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0)
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(&blog.BlogID, &blog.Title, &blog.Content,
			&blog.CreatedAt, &blog.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*blogRepository.GetAllBlogs").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		blogs = append(blogs, blog)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blogs, nil
}

// UpdateBlog applies a partial update of title/content to the post
// identified by blogID and returns the updated row.
//
// The UPDATE is built dynamically with squirrel so that only non-nil fields
// of the update are touched. updated_at is always refreshed.
//
// Error handling:
//   - No fields to update → [ErrBuildingSQLQuery].
//   - [sql.ErrNoRows] on RETURNING scan → [ErrBlogNotFound].
func (r *blogRepository) UpdateBlog(ctx context.Context, blogID int64, update models.BlogUpdate) (models.Blog, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("blogs").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"blog_id": blogID}).
		Suffix("RETURNING blog_id, title, content, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	fields := 0
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		fields++
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
		fields++
	}
	if fields == 0 {
		return models.Blog{}, ErrBuildingSQLQuery
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("error building update query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Blog
	if err := row.Scan(&updated.BlogID, &updated.Title, &updated.Content,
		&updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Blog{}, ErrBlogNotFound
		}
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("unexpected DB error")
		return models.Blog{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteBlog removes a post. Comments follow via ON DELETE CASCADE.
//
// Error handling:
//   - zero rows affected → [ErrBlogNotFound].
func (r *blogRepository) DeleteBlog(ctx context.Context, blogID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBlog, blogID)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("unexpected DB error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// AddComment appends a comment to a post's thread and returns it with
// server-assigned fields (CommentID, CreatedAt).
//
// Error handling:
//   - PostgreSQL foreign_key_violation (23503) on blog_id →
//     [ErrBlogNotFound]. The referential constraint is the authoritative
//     existence signal; there is no read-then-write check.
func (r *blogRepository) AddComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createComment, comment.BlogID, comment.UserID, comment.Text)

	var created models.Comment
	if err := row.Scan(&created.CommentID, &created.BlogID, &created.UserID,
		&created.Text, &created.CreatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			log.Err(err).Str("func", "*blogRepository.AddComment").Int64("blog_id", comment.BlogID).Msg("blog does not exist")
			return models.Comment{}, ErrBlogNotFound
		case "":
			log.Err(err).Str("func", "*blogRepository.AddComment").Msg("error: scanning error")
			return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Str("func", "*blogRepository.AddComment").Msg("unexpected DB error")
			return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetComments returns a post's comment thread in insertion order with the
// author display fields (name, avatar) resolved by an explicit join.
//
// A missing post yields an empty slice here; existence is checked by the
// service layer so that it can distinguish "no comments" from "no post".
func (r *blogRepository) GetComments(ctx context.Context, blogID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCommentsForBlog, blogID)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.GetComments").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.CommentID, &comment.BlogID, &comment.UserID,
			&comment.AuthorName, &comment.AuthorAvatar, &comment.Text, &comment.CreatedAt); err != nil {
			log.Err(err).Str("func", "*blogRepository.GetComments").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}
