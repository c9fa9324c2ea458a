package database

import (
	"github.com/rlozano/blog-api/models"
	"gorm.io/gorm"
)

type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db}
}

// FindByUsername returns the admin account matching username
func (r *AdminRepo) FindByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.Where("username = ?", username).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Add inserts a new admin account into the database
func (r *AdminRepo) Add(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// Count returns the number of admin accounts
func (r *AdminRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Admin{}).Count(&count).Error
	return count, err
}
