package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"shopfront/internal/model"
)

// UserRepository reads user credential records. There is no write path here;
// registration happens outside this service.
type UserRepository interface {
	// FindByUsername returns the first row matching username, or (nil, nil)
	// when no row matches. Transport failures return an error.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
