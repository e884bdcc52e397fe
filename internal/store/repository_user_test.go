package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/models"
)

var userColumns = []string{"user_id", "email", "name", "password_hash", "bio", "avatar", "created_at", "updated_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	user := models.User{Email: "john@example.com", Name: "John", PasswordHash: "bcrypt-hash"}

	rows := sqlmock.NewRows(userColumns).
		AddRow(1, user.Email, user.Name, user.PasswordHash, "", "", now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Name, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, user.Email, created.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "dup@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(userColumns).
		AddRow(7, "jane@example.com", "Jane", "hash", "bio", "avatar.png", now, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("jane@example.com").
		WillReturnRows(rows)

	found, err := repo.FindUserByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(7), found.UserID)
	assert.Equal(t, "Jane", found.Name)
	assert.Equal(t, "avatar.png", found.Avatar)
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	now := time.Now()
	name := "New Name"
	bio := "new bio"

	rows := sqlmock.NewRows(userColumns).
		AddRow(7, "jane@example.com", name, "hash", bio, "", now, now)

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(rows)

	updated, err := repo.UpdateProfile(context.Background(), 7, models.ProfileUpdate{Name: &name, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, bio, updated.Bio)
}

func TestUpdateProfile_NoFields(t *testing.T) {
	repo, _, db := newTestUserRepo(t)
	defer db.Close()

	_, err := repo.UpdateProfile(context.Background(), 7, models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestUpdateProfile_UserMissing(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	name := "whoever"
	mock.ExpectQuery("UPDATE users").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateProfile(context.Background(), 404, models.ProfileUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
