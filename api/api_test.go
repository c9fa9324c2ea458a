package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

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

func newTestRouter(t *testing.T, overrides map[string]string) (http.Handler, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Post{}, &models.Comment{}, &models.Admin{}))

	currentDB := database.New(db)
	require.NoError(t, currentDB.Seed(bcrypt.MinCost))

	cfg := map[string]string{
		"JWT_SECRET":       "test-secret",
		"RATE_LIMIT_RPS":   "1000",
		"RATE_LIMIT_BURST": "1000",
	}
	for k, v := range overrides {
		cfg[k] = v
	}

	return newRouter(currentDB, withConfig(cfg), withStartupTime(time.Now())), currentDB
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginAsAdmin(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": database.DefaultAdminUsername,
		"password": database.DefaultAdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result.Token
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Contains(t, body, "timestamp")
	assert.Contains(t, body, "uptime")
}

func TestListPostsPublic(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/posts", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Posts []struct {
			Slug string   `json:"slug"`
			Tags []string `json:"tags"`
		} `json:"posts"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Posts, 2)
	assert.Equal(t, int64(2), body.Pagination.Total)
	assert.Equal(t, 1, body.Pagination.Pages)
	for _, p := range body.Posts {
		assert.NotEmpty(t, p.Tags)
	}
}

func TestGetPostBySlug(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/posts/infografico-tiempo", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Slug  string   `json:"slug"`
		Tags  []string `json:"tags"`
		Views int64    `json:"views"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "infografico-tiempo", body.Slug)
	assert.Equal(t, []string{"Hábitos", "Productividad", "Semana 1"}, body.Tags)

	rec = doJSON(t, router, http.MethodGet, "/api/posts/no-such-post", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var errBody ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "error", errBody.Status)
	assert.NotEmpty(t, errBody.CorrelationID)
}

func TestSearchRequiresQuery(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/search", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/search?q=x", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Posts      []any `json:"posts"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Posts)
	assert.Equal(t, int64(0), body.Pagination.Total)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	post := map[string]any{
		"title": "t", "slug": "t", "excerpt": "e", "content": "c",
	}

	rec := doJSON(t, router, http.MethodPost, "/api/admin/posts", post, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/admin/posts", post, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "admin", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec2 := doJSON(t, router, http.MethodPost, "/api/admin/login", map[string]string{
		"username": "ghost", "password": "admin123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec2.Code)

	var a, b ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &b))
	assert.Equal(t, a.Error, b.Error)
}

func TestAdminPostLifecycle(t *testing.T) {
	router, db := newTestRouter(t, nil)
	token := loginAsAdmin(t, router)

	created := doJSON(t, router, http.MethodPost, "/api/admin/posts", map[string]any{
		"title":     "Aportación 3",
		"slug":      "aportacion-3",
		"excerpt":   "tercera entrada",
		"content":   "<p>hola</p>",
		"tags":      []string{"Semana 3"},
		"published": true,
	}, token)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var createdBody struct {
		Success bool `json:"success"`
		Post    struct {
			ID   string   `json:"id"`
			Tags []string `json:"tags"`
		} `json:"post"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &createdBody))
	assert.True(t, createdBody.Success)
	assert.Equal(t, []string{"Semana 3"}, createdBody.Post.Tags)

	// Comment on it publicly
	commented := doJSON(t, router, http.MethodPost, "/api/posts/"+createdBody.Post.ID+"/comments", map[string]any{
		"author":  "ana",
		"content": "buen trabajo",
	}, "")
	require.Equal(t, http.StatusOK, commented.Code, commented.Body.String())

	var commentBody struct {
		Success bool `json:"success"`
		Comment struct {
			ID       string `json:"id"`
			Approved bool   `json:"approved"`
		} `json:"comment"`
	}
	require.NoError(t, json.Unmarshal(commented.Body.Bytes(), &commentBody))
	assert.True(t, commentBody.Comment.Approved)

	// Moderate it down
	moderated := doJSON(t, router, http.MethodPatch, "/api/admin/comments/"+commentBody.Comment.ID, map[string]any{
		"approved": false,
	}, token)
	require.Equal(t, http.StatusOK, moderated.Code, moderated.Body.String())

	// Update the post
	updated := doJSON(t, router, http.MethodPut, "/api/admin/posts/"+createdBody.Post.ID, map[string]any{
		"title": "Aportación 3 (editada)",
	}, token)
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())

	// Delete it; its comments go with it
	deleted := doJSON(t, router, http.MethodDelete, "/api/admin/posts/"+createdBody.Post.ID, nil, token)
	require.Equal(t, http.StatusOK, deleted.Code, deleted.Body.String())

	gone := doJSON(t, router, http.MethodGet, "/api/posts/aportacion-3", nil, "")
	assert.Equal(t, http.StatusNotFound, gone.Code)

	comments, err := db.CommentRepo().FindByPostID(uuid.MustParse(createdBody.Post.ID))
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCreatePostValidation(t *testing.T) {
	router, _ := newTestRouter(t, nil)
	token := loginAsAdmin(t, router)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"bad slug", map[string]any{"title": "t", "slug": "Bad Slug!", "excerpt": "e", "content": "c"}},
		{"missing title", map[string]any{"slug": "ok-slug", "excerpt": "e", "content": "c"}},
		{"too many tags", map[string]any{
			"title": "t", "slug": "ok-slug", "excerpt": "e", "content": "c",
			"tags": []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"},
		}},
		{"bad cover url", map[string]any{
			"title": "t", "slug": "ok-slug", "excerpt": "e", "content": "c", "coverUrl": "not a url",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/admin/posts", tc.body, token)
			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

func TestCreateCommentValidation(t *testing.T) {
	router, db := newTestRouter(t, nil)

	post, err := db.PostRepo().FindPublishedBySlug("infografico-tiempo")
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, "/api/posts/"+post.ID.String()+"/comments", map[string]any{
		"author": "a", "content": "valid content here",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/posts/"+post.ID.String()+"/comments", map[string]any{
		"author": "ana", "email": "not-an-email", "content": "valid content here",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	router, _ := newTestRouter(t, map[string]string{
		"RATE_LIMIT_RPS":   "1",
		"RATE_LIMIT_BURST": "2",
	})

	first := doJSON(t, router, http.MethodGet, "/api/health", nil, "")
	second := doJSON(t, router, http.MethodGet, "/api/health", nil, "")
	third := doJSON(t, router, http.MethodGet, "/api/health", nil, "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
}
