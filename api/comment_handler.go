package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rlozano/blog-api/errs"
	"github.com/rlozano/blog-api/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentHandler struct {
	responder Responder
	logger    zerolog.Logger
	comments  *services.CommentService
}

func newCommentHandler(comments *services.CommentService) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder: NewResponder(logger),
		logger:    logger,
		comments:  comments,
	}
}

// createComment attaches a reader comment to a post. Comments go live
// immediately; moderation can only take them down afterwards.
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			h.responder.WriteError(w, r, errs.NewBadRequestError("invalid postID"))
			return
		}

		var req createCommentRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		if err := checkRequest(req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		comment, err := h.comments.Create(services.CommentInput{
			PostID:  postID,
			Author:  req.Author,
			Email:   req.Email,
			Content: req.Content,
		})
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"comment": comment,
		})
	}
}

// updateComment toggles the approved state of a comment (admin only)
func (h commentHandler) updateComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, r, errs.NewBadRequestError("invalid commentID"))
			return
		}

		var req updateCommentRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		if err := checkRequest(req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		comment, err := h.comments.SetApproved(commentID, *req.Approved)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"comment": comment,
		})
	}
}
