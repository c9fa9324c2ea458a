package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rlozano/blog-api/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError translates any failure into the structured error envelope. The
// envelope carries the request correlation ID; internal messages and causes
// never reach the client.
func (r Responder) WriteError(w http.ResponseWriter, req *http.Request, err error) {
	correlationID := middleware.GetReqID(req.Context())

	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().
			Str("correlationId", correlationID).
			Str("path", req.URL.Path).
			Msg(err.Error())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		r.writeBody(w, map[string]any{
			"error":         "Internal server error",
			"status":        "error",
			"correlationId": correlationID,
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().
			Str("correlationId", correlationID).
			Str("path", req.URL.Path).
			AnErr("cause", apiErr.Cause).
			Msg(apiErr.Error())
	}

	response := map[string]any{
		"error":         apiErr.Error(),
		"status":        "error",
		"correlationId": correlationID,
	}
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.StatusCode)
	r.writeBody(w, response)
}

func (r Responder) writeBody(w http.ResponseWriter, body map[string]any) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling error response")
		return
	}
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}
