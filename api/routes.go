package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes sets up the public site routes and the admin routes behind
// bearer-token authentication
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public site endpoints
		r.Get("/health", healthHandler(startupTime))
		r.Get("/posts", handlers.postHandler.listPosts())
		r.Get("/posts/{slug}", handlers.postHandler.getPostBySlug())
		r.Get("/search", handlers.postHandler.searchPosts())
		r.Post("/posts/{postID}/comments", handlers.commentHandler.createComment())

		// Admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", handlers.adminHandler.login())

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.authenticate)

				r.Post("/posts", handlers.postHandler.createPost())
				r.Put("/posts/{postID}", handlers.postHandler.updatePost())
				r.Delete("/posts/{postID}", handlers.postHandler.deletePost())
				r.Patch("/comments/{commentID}", handlers.commentHandler.updateComment())
			})
		})
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startupTime).Seconds(),
		})
	}
}
