package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/models"
)

var blogColumns = []string{"blog_id", "title", "content", "created_at", "updated_at"}

func newTestBlogRepo(t *testing.T) (*blogRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &blogRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateBlog_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns).
		AddRow(1, "First post", "Hello world", now, now)

	mock.ExpectQuery("INSERT INTO blogs").
		WithArgs("First post", "Hello world").
		WillReturnRows(rows)

	created, err := repo.CreateBlog(context.Background(), models.Blog{Title: "First post", Content: "Hello world"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.BlogID)
	assert.Equal(t, "First post", created.Title)
}

func TestGetBlog_NotFound(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM blogs").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBlog(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestGetAllBlogs_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(blogColumns).
		AddRow(1, "First", "a", now, now).
		AddRow(2, "Second", "b", now, now)

	mock.ExpectQuery("SELECT (.+) FROM blogs").
		WillReturnRows(rows)

	blogs, err := repo.GetAllBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "First", blogs[0].Title)
	assert.Equal(t, "Second", blogs[1].Title)
}

func TestGetAllBlogs_Empty(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM blogs").
		WillReturnRows(sqlmock.NewRows(blogColumns))

	blogs, err := repo.GetAllBlogs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, blogs)
	assert.Empty(t, blogs)
}

func TestUpdateBlog_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	now := time.Now()
	title := "Updated"
	rows := sqlmock.NewRows(blogColumns).
		AddRow(1, title, "unchanged", now, now)

	mock.ExpectQuery("UPDATE blogs").
		WillReturnRows(rows)

	updated, err := repo.UpdateBlog(context.Background(), 1, models.BlogUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
}

func TestUpdateBlog_NotFound(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	title := "whatever"
	mock.ExpectQuery("UPDATE blogs").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateBlog(context.Background(), 404, models.BlogUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestUpdateBlog_NoFields(t *testing.T) {
	repo, _, db := newTestBlogRepo(t)
	defer db.Close()

	_, err := repo.UpdateBlog(context.Background(), 1, models.BlogUpdate{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestDeleteBlog_NotFound(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM blogs").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteBlog(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestDeleteBlog_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM blogs").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteBlog(context.Background(), 1))
}

func TestAddComment_BlogMissing(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO comments").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.AddComment(context.Background(), models.Comment{BlogID: 404, UserID: 1, Text: "hi"})
	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestAddComment_Success(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"comment_id", "blog_id", "user_id", "text", "created_at"}).
		AddRow(10, 1, 7, "nice post", now)

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(int64(1), int64(7), "nice post").
		WillReturnRows(rows)

	created, err := repo.AddComment(context.Background(), models.Comment{BlogID: 1, UserID: 7, Text: "nice post"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.CommentID)
	assert.Equal(t, int64(7), created.UserID)
}

func TestGetComments_InsertionOrderWithAuthors(t *testing.T) {
	repo, mock, db := newTestBlogRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"comment_id", "blog_id", "user_id", "name", "avatar", "text", "created_at"}).
		AddRow(1, 1, 7, "Jane", "jane.png", "first", now).
		AddRow(2, 1, 8, "John", "", "second", now)

	mock.ExpectQuery("SELECT (.+) FROM comments").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	comments, err := repo.GetComments(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "Jane", comments[0].AuthorName)
	assert.Equal(t, "jane.png", comments[0].AuthorAvatar)
	assert.Equal(t, "second", comments[1].Text)
}
