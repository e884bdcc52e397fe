package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/simpleblog/backend/internal/config"
	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/internal/store"
	"github.com/simpleblog/backend/internal/utils"
	"github.com/simpleblog/backend/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile access,
// and JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that name, email, and password are all non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// Duplicate detection is left entirely to the store's unique constraint.
//
// Returns the persisted user (with a server-assigned UserID, password hash
// cleared) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.PasswordHash = ""
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// that login responses carry no account-enumeration signal. The password
// comparison is bcrypt's constant-time check.
//
// Returns the authenticated user record (password hash cleared) or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials on unknown email or wrong password.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPasswordHash(password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.UserID).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser.PasswordHash = ""
	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// expiry, and issuer claim, and classifies the failure into one of the
// explicit sentinels (ErrTokenExpired, ErrTokenSignatureInvalid,
// ErrTokenMalformed, ErrTokenInvalid). Callers treat every failure the same
// way; the distinction feeds diagnostics only.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenMalformed):
			return models.Token{}, ErrTokenMalformed
		default:
			return models.Token{}, ErrTokenInvalid
		}
	}

	return token, nil
}

// GetProfile returns the public profile of the user identified by userID.
// The caller is expected to pass only an identity resolved from a verified
// token, never a client-supplied one.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

// UpdateProfile applies a partial update to the profile of the user
// identified by userID and returns the updated public profile.
//
// Returns ErrInvalidDataProvided if no field is supplied or if a supplied
// name is empty.
func (a *authService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Name == nil && update.Bio == nil && update.Avatar == nil {
		return models.User{}, ErrInvalidDataProvided
	}
	if update.Name != nil && *update.Name == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}
