package http

import (
	"errors"
	"net/http"

	"github.com/simpleblog/backend/internal/service"
	"github.com/simpleblog/backend/internal/store"
	"github.com/simpleblog/backend/internal/utils"
	"github.com/simpleblog/backend/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,

	service.ErrTokenExpired:          http.StatusForbidden,
	service.ErrTokenSignatureInvalid: http.StatusForbidden,
	service.ErrTokenMalformed:        http.StatusForbidden,
	service.ErrTokenInvalid:          http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrBlogNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "invalid data provided",
	service.ErrInvalidCredentials:  "invalid credentials",

	service.ErrTokenExpired:          "invalid token",
	service.ErrTokenSignatureInvalid: "invalid token",
	service.ErrTokenMalformed:        "invalid token",
	service.ErrTokenInvalid:          "invalid token",

	store.ErrEmailAlreadyExists: "user already exists",
	store.ErrUserNotFound:       "user not found",
	store.ErrBlogNotFound:       "blog not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return "something went wrong"
}

// writeError responds with a JSON error body {"message": "..."} whose message
// and status code are derived from the error's classification. Internal error
// details never leak to the client; they are only logged by the caller.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Message: messageFromError(err)}, statusFromError(err))
}
