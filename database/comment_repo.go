package database

import (
	"github.com/google/uuid"
	"github.com/rlozano/blog-api/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByID returns a comment by its ID
func (r *CommentRepo) FindByID(id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByPostID returns all comments belonging to a post, newest first
func (r *CommentRepo) FindByPostID(postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error
	return comments, err
}

// SetApproved toggles the moderation state of a comment. Returns
// gorm.ErrRecordNotFound when no comment row matches id.
func (r *CommentRepo) SetApproved(id uuid.UUID, approved bool) error {
	res := r.db.Model(&models.Comment{}).
		Where("id = ?", id).
		Update("approved", approved)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
