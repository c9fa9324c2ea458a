package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rlozano/blog-api/database"
	"github.com/rlozano/blog-api/models"
)

func newTestDB(t *testing.T) database.Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Comment{}, &models.Admin{}))
	return database.New(db)
}

func seedPost(t *testing.T, db database.Database, slug string, published bool, views int64, createdAt time.Time, tags models.TagList) *models.Post {
	t.Helper()

	post := &models.Post{
		ID:        uuid.New(),
		Slug:      slug,
		Title:     "Title for " + slug,
		Excerpt:   "Excerpt for " + slug,
		Content:   "<p>Content for " + slug + "</p>",
		Tags:      tags,
		Published: published,
		Views:     views,
		CreatedAt: createdAt,
	}
	if post.Tags == nil {
		post.Tags = models.TagList{}
	}
	require.NoError(t, db.PostRepo().Add(post))
	return post
}

func seedComment(t *testing.T, db database.Database, postID uuid.UUID, author string, approved bool, createdAt time.Time) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    postID,
		Author:    author,
		Content:   "a comment from " + author,
		Approved:  approved,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.CommentRepo().Add(comment))
	return comment
}
