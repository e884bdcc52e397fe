package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/simpleblog/backend/internal/utils"
	"github.com/simpleblog/backend/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", traceIDHeader},
		AllowCredentials: true,
	}))
	router.Use(middleware.Timeout(h.cfg.Server.RequestTimeout))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)

		r.Get("/blogs", h.listBlogs)
		r.Get("/blogs/{id}", h.getBlog)
		r.Get("/blogs/{id}/comments", h.listComments)
	})

	// routes requiring a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/profile/me", h.profile)
		r.Put("/auth/profile", h.updateProfile)

		r.Post("/blogs", h.createBlog)
		r.Put("/blogs/{id}", h.updateBlog)
		r.Delete("/blogs/{id}", h.deleteBlog)
		r.Post("/blogs/{id}/comments", h.addComment)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Message: "route not found"}, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Message: "method not allowed"}, http.StatusMethodNotAllowed)
	})

	return router
}
