package database_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Comment{}, &models.Admin{}))
	return database.New(db)
}

func TestSeed_CreatesDefaults(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Seed(bcrypt.MinCost))

	admin, err := db.AdminRepo().FindByUsername(database.DefaultAdminUsername)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(admin.Password), []byte(database.DefaultAdminPassword)))

	posts, err := db.PostRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), posts)

	sample, err := db.PostRepo().FindPublishedBySlug("infografico-tiempo")
	require.NoError(t, err)
	assert.Equal(t, int64(42), sample.Views)
	assert.Equal(t, models.TagList{"Hábitos", "Productividad", "Semana 1"}, sample.Tags)
}

func TestSeed_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Seed(bcrypt.MinCost))
	require.NoError(t, db.Seed(bcrypt.MinCost))

	admins, err := db.AdminRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), admins)

	posts, err := db.PostRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(2), posts)
}

func TestSeed_SkipsPostsWhenAnyExist(t *testing.T) {
	db := newTestDB(t)

	existing := &models.Post{
		ID:      uuid.New(),
		Slug:    "already-here",
		Title:   "Existing",
		Excerpt: "e",
		Content: "c",
		Tags:    models.TagList{},
	}
	require.NoError(t, db.PostRepo().Add(existing))

	require.NoError(t, db.Seed(bcrypt.MinCost))

	posts, err := db.PostRepo().Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), posts)
}
