package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/internal/utils"
	"github.com/simpleblog/backend/models"
)

// sessionCookieName is the cookie the login handler sets and the auth
// middleware reads back.
const sessionCookieName = "token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It looks for a session token first in the "token" cookie and then in the
// "Authorization" header, validates it via the auth service, and — on
// success — stores the authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests without any credential are rejected with HTTP 401 Unauthorized;
// requests whose credential is present but fails verification (expired,
// malformed, bad signature) are rejected with HTTP 403 Forbidden. All
// rejection events are logged using the context-scoped logger obtained via
// [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromRequest(r)
		if err != nil {
			if errors.Is(err, ErrNoTokenProvided) {
				log.Err(err).Send()
				utils.WriteJSON(w, models.ErrorResponse{Message: ErrNoTokenProvided.Error()}, http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("malformed credential")
			utils.WriteJSON(w, models.ErrorResponse{Message: "invalid token"}, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token verification failed")
			utils.WriteJSON(w, models.ErrorResponse{Message: "invalid token"}, http.StatusForbidden)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest extracts the session token from an incoming request.
//
// The "token" cookie takes precedence; when it is absent or empty the
// "Authorization" header is consulted, which must follow the standard format:
//
//	Authorization: Bearer <token>
//
// It returns [ErrNoTokenProvided] when the request carries neither credential.
func getTokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoTokenProvided
	}

	return utils.ParseBearerToken(authHeader)
}
