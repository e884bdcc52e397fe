package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/internal/store"
	"github.com/simpleblog/backend/internal/utils"
	"github.com/simpleblog/backend/models"
)

type createBlogRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type addCommentRequest struct {
	Text string `json:"text"`
}

// blogIDFromRequest parses the {id} URL parameter. A non-numeric ID can never
// match a stored post, so it is reported the same way as a missing one.
func blogIDFromRequest(r *http.Request) (int64, error) {
	blogID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, store.ErrBlogNotFound
	}
	return blogID, nil
}

func (h *Handler) listBlogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blogs, err := h.services.BlogService.ListBlogs(ctx)
	if err != nil {
		log.Err(err).Msg("listing blogs failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, blogs, http.StatusOK)
}

func (h *Handler) getBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blogID, err := blogIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	blog, err := h.services.BlogService.GetBlog(ctx, blogID)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) createBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req createBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	blog, err := h.services.BlogService.CreateBlog(ctx, req.Title, req.Content)
	if err != nil {
		log.Err(err).Msg("blog creation failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("blog_id", blog.BlogID).Msg("blog created")

	utils.WriteJSON(w, blog, http.StatusCreated)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blogID, err := blogIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var update models.BlogUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	blog, err := h.services.BlogService.UpdateBlog(ctx, blogID, update)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, blog, http.StatusOK)
}

func (h *Handler) deleteBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blogID, err := blogIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.services.BlogService.DeleteBlog(ctx, blogID); err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("blog deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "blog deleted successfully"}, http.StatusOK)
}

func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		utils.WriteJSON(w, models.ErrorResponse{Message: ErrNoTokenProvided.Error()}, http.StatusUnauthorized)
		return
	}

	blogID, err := blogIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	comment, err := h.services.BlogService.AddComment(ctx, blogID, userID, req.Text)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("adding comment failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handler) listComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	blogID, err := blogIDFromRequest(r)
	if err != nil {
		writeError(w, err)
		return
	}

	comments, err := h.services.BlogService.ListComments(ctx, blogID)
	if err != nil {
		log.Err(err).Int64("blog_id", blogID).Msg("listing comments failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}
