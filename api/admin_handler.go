package api

import (
	"net/http"

	"github.com/rlozano/blog-api/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	admins    *services.AdminService
}

func newAdminHandler(admins *services.AdminService) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		admins:    admins,
	}
}

// login verifies credentials and returns a signed token with the public user
// projection
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}
		if err := checkRequest(req); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		result, err := h.admins.Login(req.Username, req.Password)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}
