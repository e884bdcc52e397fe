package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/internal/utils"
	"github.com/simpleblog/backend/models"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   int(h.cfg.Auth.TokenDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: foundUser}, http.StatusOK)
}

// logout clears the session cookie. Tokens are not tracked server-side, so a
// token presented after logout remains valid until it expires.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteJSON(w, models.MessageResponse{Message: "logged out successfully"}, http.StatusOK)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: ErrNoTokenProvided.Error()}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: ErrNoTokenProvided.Error()}, http.StatusUnauthorized)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("profile update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
