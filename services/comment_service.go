package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rlozano/blog-api/database"
	"github.com/rlozano/blog-api/errs"
	"github.com/rlozano/blog-api/models"
	"gorm.io/gorm"
)

type CommentService struct {
	comments *database.CommentRepo
	posts    *database.PostRepo
}

func NewCommentService(comments *database.CommentRepo, posts *database.PostRepo) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// CommentInput carries the validated fields for creating a comment.
type CommentInput struct {
	PostID  uuid.UUID
	Author  string
	Email   string
	Content string
}

// Create persists a new comment against an existing post. Comments are
// approved on creation; the moderation toggle only un-approves after the fact.
func (s *CommentService) Create(input CommentInput) (*models.Comment, error) {
	if _, err := s.posts.FindByID(input.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("post")
		}
		return nil, errs.NewDatabaseError("find", "post", err)
	}

	comment := &models.Comment{
		ID:       uuid.New(),
		PostID:   input.PostID,
		Author:   input.Author,
		Email:    input.Email,
		Content:  input.Content,
		Approved: true,
	}
	if err := s.comments.Add(comment); err != nil {
		return nil, errs.NewDatabaseError("create", "comment", err)
	}
	return comment, nil
}

// SetApproved toggles the moderation state of a comment.
func (s *CommentService) SetApproved(id uuid.UUID, approved bool) (*models.Comment, error) {
	if err := s.comments.SetApproved(id, approved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("comment")
		}
		return nil, errs.NewDatabaseError("update", "comment", err)
	}

	comment, err := s.comments.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comment", err)
	}
	return comment, nil
}
