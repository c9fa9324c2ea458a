package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rlozano/blog-api/database"
	"github.com/rlozano/blog-api/errs"
	"github.com/rlozano/blog-api/models"
	"gorm.io/gorm"
)

// minSearchLength is the shortest query (in runes, after trimming) that hits
// the database; anything shorter yields an empty result, not an error.
const minSearchLength = 2

type PostService struct {
	posts *database.PostRepo
}

func NewPostService(posts *database.PostRepo) *PostService {
	return &PostService{posts: posts}
}

// PostSummary is the list/search projection of a post: no body content, tags
// already deserialized, approved-comment count attached.
type PostSummary struct {
	ID            uuid.UUID      `json:"id"`
	Slug          string         `json:"slug"`
	Title         string         `json:"title"`
	Excerpt       string         `json:"excerpt"`
	Tags          models.TagList `json:"tags"`
	CoverURL      *string        `json:"coverUrl,omitempty"`
	Views         int64          `json:"views"`
	CreatedAt     time.Time      `json:"createdAt"`
	CommentsCount int64          `json:"commentsCount"`
}

// PostPage is one page of post summaries with its pagination descriptor.
type PostPage struct {
	Posts      []PostSummary `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

// PublicComment is the reader-facing projection of a comment; email stays
// private.
type PublicComment struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostDetail is a full post with its approved comments.
type PostDetail struct {
	models.Post
	Comments []PublicComment `json:"comments"`
}

// PostInput carries the validated fields for creating a post.
type PostInput struct {
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	Tags      []string
	CoverURL  *string
	Published bool
}

// PostPatch carries a partial update; nil fields are left untouched.
type PostPatch struct {
	Title     *string
	Slug      *string
	Excerpt   *string
	Content   *string
	Tags      *[]string
	CoverURL  *string
	Published *bool
}

// GetAll returns one page of published posts, newest first.
func (s *PostService) GetAll(page, limit int) (*PostPage, error) {
	page, limit = clampPaging(page, limit)

	rows, total, err := s.posts.FindPublishedPage((page-1)*limit, limit)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "posts", err)
	}

	return &PostPage{
		Posts:      summarize(rows),
		Pagination: newPagination(page, limit, total),
	}, nil
}

// GetOneBySlug returns the published post matching slug with its approved
// comments and, as a side effect, increments the post's view counter by one.
// The returned views value is the one read before the increment.
func (s *PostService) GetOneBySlug(slug string) (*PostDetail, error) {
	post, err := s.posts.FindPublishedBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("post")
		}
		return nil, errs.NewDatabaseError("find", "post", err)
	}

	if err := s.posts.IncrementViews(post.ID); err != nil {
		return nil, errs.NewDatabaseError("update", "post", err)
	}

	comments := make([]PublicComment, 0, len(post.Comments))
	for _, c := range post.Comments {
		comments = append(comments, PublicComment{
			ID:        c.ID,
			Author:    c.Author,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}

	detail := &PostDetail{Post: *post, Comments: comments}
	detail.Post.Comments = nil
	return detail, nil
}

// Search returns published posts matching query, most viewed first. Queries
// shorter than two runes after trimming return an empty page with total 0.
func (s *PostService) Search(query string, page, limit int) (*PostPage, error) {
	term := strings.TrimSpace(query)
	_, limit = clampPaging(page, limit)

	if utf8.RuneCountInString(term) < minSearchLength {
		return &PostPage{
			Posts:      []PostSummary{},
			Pagination: Pagination{Page: 1, Limit: limit, Total: 0, Pages: 0},
		}, nil
	}

	page, limit = clampPaging(page, limit)
	rows, total, err := s.posts.SearchPublished(term, (page-1)*limit, limit)
	if err != nil {
		return nil, errs.NewDatabaseError("search", "posts", err)
	}

	return &PostPage{
		Posts:      summarize(rows),
		Pagination: newPagination(page, limit, total),
	}, nil
}

// Create persists a new post. Slug uniqueness is enforced by the store; a
// collision surfaces as a conflict.
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	post := &models.Post{
		ID:        uuid.New(),
		Slug:      input.Slug,
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Tags:      models.TagList(input.Tags),
		CoverURL:  input.CoverURL,
		Published: input.Published,
	}
	if post.Tags == nil {
		post.Tags = models.TagList{}
	}

	if err := s.posts.Add(post); err != nil {
		return nil, errs.NewDatabaseError("create", "post", err)
	}
	return post, nil
}

// Update applies a partial update to an existing post.
func (s *PostService) Update(id uuid.UUID, patch PostPatch) (*models.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("post")
		}
		return nil, errs.NewDatabaseError("find", "post", err)
	}

	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Slug != nil {
		post.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		post.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		post.Content = *patch.Content
	}
	if patch.Tags != nil {
		post.Tags = models.TagList(*patch.Tags)
		if post.Tags == nil {
			post.Tags = models.TagList{}
		}
	}
	if patch.CoverURL != nil {
		post.CoverURL = patch.CoverURL
	}
	if patch.Published != nil {
		post.Published = *patch.Published
	}

	if err := s.posts.Update(post); err != nil {
		return nil, errs.NewDatabaseError("update", "post", err)
	}
	return post, nil
}

// Delete removes a post and, by ownership, its comments.
func (s *PostService) Delete(id uuid.UUID) error {
	if err := s.posts.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("post")
		}
		return errs.NewDatabaseError("delete", "post", err)
	}
	return nil
}

func summarize(rows []database.PostWithCount) []PostSummary {
	summaries := make([]PostSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, PostSummary{
			ID:            row.ID,
			Slug:          row.Slug,
			Title:         row.Title,
			Excerpt:       row.Excerpt,
			Tags:          row.Tags,
			CoverURL:      row.CoverURL,
			Views:         row.Views,
			CreatedAt:     row.CreatedAt,
			CommentsCount: row.CommentsCount,
		})
	}
	return summaries
}
