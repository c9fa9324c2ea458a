package database

import (
	"gorm.io/gorm"
)

type Database struct {
	postRepo    *PostRepo
	commentRepo *CommentRepo
	adminRepo   *AdminRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		postRepo:    NewPostRepo(db),
		commentRepo: NewCommentRepo(db),
		adminRepo:   NewAdminRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) AdminRepo() *AdminRepo {
	return d.adminRepo
}
