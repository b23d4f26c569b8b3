package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"realty-service/internal/apperr"
	"realty-service/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("UserRepository.GetByEmail: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("UserRepository.Create: %w", err)
	}
	return nil
}

// EnsureAdmin creates the admin account when no user holds email yet.
// Used by the seed command; an existing account is left untouched.
func (r *UserRepository) EnsureAdmin(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	existing, err := r.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}
	u := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleAdmin,
	}
	if err := r.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
