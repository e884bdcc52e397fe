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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and profile mutation against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//     The constraint violation is the authoritative conflict signal; there
//     is deliberately no read-then-write existence check.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Name, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Email, &created.Name, &created.PasswordHash,
		&created.Bio, &created.Avatar, &created.CreatedAt, &created.UpdatedAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("duplicate email")
			return models.User{}, ErrEmailAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the one
// provided.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	var found models.User
	if err := row.Scan(&found.UserID, &found.Email, &found.Name, &found.PasswordHash,
		&found.Bio, &found.Avatar, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetUserByID retrieves the user record with the given identifier.
//
// Error handling mirrors [FindUserByEmail].
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getUserByID, userID)

	var found models.User
	if err := row.Scan(&found.UserID, &found.Email, &found.Name, &found.PasswordHash,
		&found.Bio, &found.Avatar, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserByID").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateProfile applies a partial update of the mutable profile fields to
// the record identified by userID and returns the updated row.
//
// The UPDATE is built dynamically with squirrel so that only non-nil fields
// of the update are touched. updated_at is always refreshed.
//
// Error handling:
//   - No fields to update → [ErrBuildingSQLQuery].
//   - [sql.ErrNoRows] on RETURNING scan → [ErrUserNotFound].
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, email, name, password_hash, bio, avatar, created_at, updated_at").
		PlaceholderFormat(sq.Dollar)

	fields := 0
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		fields++
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
		fields++
	}
	if update.Avatar != nil {
		builder = builder.Set("avatar", *update.Avatar)
		fields++
	}
	if fields == 0 {
		return models.User{}, ErrBuildingSQLQuery
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.User
	if err := row.Scan(&updated.UserID, &updated.Email, &updated.Name, &updated.PasswordHash,
		&updated.Bio, &updated.Avatar, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}
