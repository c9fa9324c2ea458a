package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rlozano/blog-api/errs"
	"github.com/rlozano/blog-api/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     *services.PostService
}

func newPostHandler(posts *services.PostService) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
	}
}

// pagingParams reads page/limit from the query string. Absent values are
// zero; the service clamps them into range. Non-numeric values are rejected.
func pagingParams(r *http.Request) (page, limit int, err error) {
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewInvalidFieldError("page", "must be an integer")
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewInvalidFieldError("limit", "must be an integer")
		}
	}
	return page, limit, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewMalformedPayloadError(err)
	}
	return nil
}

// listPosts returns one page of published posts with pagination metadata
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, limit, err := pagingParams(r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		result, err := h.posts.GetAll(page, limit)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}

// getPostBySlug returns a single published post with its approved comments
func (h postHandler) getPostBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, r, errs.NewBadRequestError("missing slug"))
			return
		}

		post, err := h.posts.GetOneBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// searchPosts returns published posts matching the q query parameter
func (h postHandler) searchPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			h.responder.WriteError(w, r, errs.NewMissingRequiredFieldError("q"))
			return
		}

		page, limit, err := pagingParams(r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		result, err := h.posts.Search(query, page, limit)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}

// createPost creates a new post (admin only)
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPostRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		if err := checkRequest(req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		post, err := h.posts.Create(services.PostInput{
			Title:     req.Title,
			Slug:      req.Slug,
			Excerpt:   req.Excerpt,
			Content:   req.Content,
			Tags:      req.Tags,
			CoverURL:  req.CoverURL,
			Published: req.Published,
		})
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"post":    post,
		})
	}
}

// updatePost applies a partial update to a post (admin only)
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, r, errs.NewBadRequestError("invalid postID"))
			return
		}

		var req updatePostRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		if err := checkRequest(req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		post, err := h.posts.Update(postID, services.PostPatch{
			Title:     req.Title,
			Slug:      req.Slug,
			Excerpt:   req.Excerpt,
			Content:   req.Content,
			Tags:      req.Tags,
			CoverURL:  req.CoverURL,
			Published: req.Published,
		})
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"post":    post,
		})
	}
}

// deletePost removes a post and its comments (admin only)
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, r, errs.NewBadRequestError("invalid postID"))
			return
		}

		if err := h.posts.Delete(postID); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
