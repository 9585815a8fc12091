package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bloglist-service/internal/domain/blog"
	"bloglist-service/internal/platform/apperr"
	"bloglist-service/internal/worker"
)

type createBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

type updateBlogRequest struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

// @Summary     List blogs
// @Tags        blogs
// @Produce     json
// @Success     200  {array}   blog.Blog
// @Failure     500  {object}  map[string]string  "server error"
// @Router      /api/blogs [get]
func (h *Handler) handleListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.blogSvc.List(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, blogs)
}

// @Summary     Blog statistics
// @Description Total likes, the favorite blog and the top authors by blog count and by likes.
// @Tags        blogs
// @Produce     json
// @Success     200  {object}  blog.Summary
// @Failure     500  {object}  map[string]string  "server error"
// @Router      /api/blogs/stats [get]
func (h *Handler) handleBlogStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.blogSvc.Stats(r.Context())
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// @Summary     Get blog
// @Tags        blogs
// @Produce     json
// @Param       id   path      string  true  "Blog ID"
// @Success     200  {object}  blog.Blog
// @Failure     400  {object}  map[string]string  "malformatted id"
// @Failure     404  {object}  map[string]string  "not found"
// @Router      /api/blogs/{id} [get]
func (h *Handler) handleGetBlog(w http.ResponseWriter, r *http.Request) {
	b, err := h.blogSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// @Summary     Create blog
// @Tags        blogs
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       request  body      createBlogRequest  true  "Blog"
// @Success     201      {object}  blog.Blog
// @Failure     400      {object}  map[string]string  "validation error"
// @Failure     401      {object}  map[string]string  "token missing or invalid"
// @Router      /api/blogs [post]
func (h *Handler) handleCreateBlog(w http.ResponseWriter, r *http.Request) {
	var req createBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	u := userFromCtx(r)
	if u == nil {
		errorResponse(w, blog.ErrUnknownUser)
		return
	}

	b := &blog.Blog{Title: req.Title, Author: req.Author, URL: req.URL}
	if err := h.blogSvc.Create(r.Context(), u.ID, b, req.Likes); err != nil {
		errorResponse(w, err)
		return
	}
	h.publish(worker.BlogEvent{Kind: worker.KindCreated, BlogID: b.ID, UserID: u.ID})
	writeJSON(w, http.StatusCreated, b)
}

// @Summary     Update blog
// @Tags        blogs
// @Accept      json
// @Produce     json
// @Param       id       path      string             true  "Blog ID"
// @Param       request  body      updateBlogRequest  true  "Fields to change"
// @Success     200      {object}  blog.Blog
// @Failure     400      {object}  map[string]string  "validation error or malformatted id"
// @Failure     404      {object}  map[string]string  "not found"
// @Router      /api/blogs/{id} [put]
func (h *Handler) handleUpdateBlog(w http.ResponseWriter, r *http.Request) {
	var req updateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	b, err := h.blogSvc.Update(r.Context(), chi.URLParam(r, "id"), blog.UpdateInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		errorResponse(w, err)
		return
	}
	h.publish(worker.BlogEvent{Kind: worker.KindUpdated, BlogID: b.ID, UserID: b.UserID})
	writeJSON(w, http.StatusOK, b)
}

// @Summary     Delete blog
// @Tags        blogs
// @Security    BearerAuth
// @Param       id   path  string  true  "Blog ID"
// @Success     204
// @Failure     401  {object}  map[string]string  "not the creator"
// @Failure     404  {object}  map[string]string  "not found"
// @Router      /api/blogs/{id} [delete]
func (h *Handler) handleDeleteBlog(w http.ResponseWriter, r *http.Request) {
	u := userFromCtx(r)
	if u == nil {
		errorResponse(w, blog.ErrUnknownUser)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.blogSvc.Delete(r.Context(), u.ID, id); err != nil {
		errorResponse(w, err)
		return
	}
	h.publish(worker.BlogEvent{Kind: worker.KindDeleted, BlogID: id, UserID: u.ID})
	w.WriteHeader(http.StatusNoContent)
}
