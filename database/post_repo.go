package database

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/rlozano/blog-api/models"
	"gorm.io/gorm"
)

// approvedCommentCount is selected alongside post columns so a page of posts
// and their comment counts come back in one query.
const approvedCommentCount = "(SELECT COUNT(1) FROM comments WHERE comments.post_id = posts.id AND comments.approved) AS comments_count"

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *PostRepo) GetDB() *gorm.DB {
	return r.db
}

// PostWithCount is a post row joined with its approved-comment count.
type PostWithCount struct {
	models.Post
	CommentsCount int64 `json:"commentsCount"`
}

// FindPublishedPage returns one page of published posts, newest first, plus
// the total count of published posts. Both reads run inside a single
// transaction so the page and the total agree.
func (r *PostRepo) FindPublishedPage(offset, limit int) ([]PostWithCount, int64, error) {
	var posts []PostWithCount
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Select("posts.*, " + approvedCommentCount).
			Where("published = ?", true).
			Order("created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&posts).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("published = ?", true).
			Count(&total).Error
	})
	return posts, total, err
}

// SearchPublished returns published posts whose title, excerpt, content or raw
// tag blob contains term (case-insensitive), most viewed first. Page and total
// are read in one transaction.
func (r *PostRepo) SearchPublished(term string, offset, limit int) ([]PostWithCount, int64, error) {
	var posts []PostWithCount
	var total int64

	pattern := sql.Named("term", "%"+strings.ToLower(term)+"%")
	cond := "LOWER(title) LIKE @term OR LOWER(excerpt) LIKE @term OR LOWER(content) LIKE @term OR LOWER(tags) LIKE @term"

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Select("posts.*, " + approvedCommentCount).
			Where("published = ?", true).
			Where(cond, pattern).
			Order("views DESC, created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&posts).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).
			Where("published = ?", true).
			Where(cond, pattern).
			Count(&total).Error
	})
	return posts, total, err
}

// FindPublishedBySlug returns the published post matching slug with its
// approved comments, newest first.
func (r *PostRepo) FindPublishedBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("approved = ?", true).Order("created_at DESC")
		}).
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByID returns a post by its ID
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// IncrementViews bumps the view counter by one on the database side. The
// increment is not atomic with any preceding read; concurrent readers of the
// same post may lose updates.
func (r *PostRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// Count returns the number of posts, published or not
func (r *PostRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// Add inserts a new post into the database
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update persists all fields of an existing post
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// Delete removes a post and every comment that belongs to it. Returns
// gorm.ErrRecordNotFound when no post row matches id.
func (r *PostRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
