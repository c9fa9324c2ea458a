package api

import (
	"time"

	"github.com/rlozano/blog-api/config"
	"github.com/rlozano/blog-api/database"
	"github.com/rlozano/blog-api/services"
)

// initializeHandlers wires the services to their handlers. Services receive
// their repositories explicitly; nothing here is process-global.
func initializeHandlers(db database.Database, c map[string]string) (*routeHandlers, *services.AdminService) {
	secret := []byte(config.GetString(c, "JWT_SECRET", "supersecreto"))
	expiry := time.Duration(config.GetInt(c, "JWT_EXPIRY_HOURS", 24)) * time.Hour

	postService := services.NewPostService(db.PostRepo())
	commentService := services.NewCommentService(db.CommentRepo(), db.PostRepo())
	adminService := services.NewAdminService(db.AdminRepo(), secret, expiry)

	handlers := &routeHandlers{
		postHandler:    newPostHandler(postService),
		commentHandler: newCommentHandler(commentService),
		adminHandler:   newAdminHandler(adminService),
	}
	return handlers, adminService
}
