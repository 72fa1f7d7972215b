// Package adapters provides repository implementations for the account feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront_backend/internal/feature/account/domain/entity"
	"storefront_backend/internal/feature/account/usecase"
	"storefront_backend/internal/platform/db"
)

// userMySQL is the GORM implementation of usecase.UserRepository.
// It works against MySQL, PostgreSQL and SQLite alike.
type userMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure userMySQL implements UserRepository.
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL creates a new instance of userMySQL.
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create inserts the user. A duplicate email yields usecase.ErrEmailAlreadyExists.
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("nil user")
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail retrieves a user by email.
// It returns usecase.ErrUserNotFound when no row matches.
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by id.
// It returns usecase.ErrUserNotFound when no row matches.
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id_usuario = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UpdateProfile overwrites name, address and phone. Updating a missing id is not an error.
func (r *userMySQL) UpdateProfile(ctx context.Context, id uint, fullName string, address, phone *string) error {
	// a map so that nil pointers are written as NULL instead of being skipped
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id_usuario = ?", id).
		Updates(map[string]any{
			"nombre_completo": fullName,
			"direccion":       address,
			"telefono":        phone,
		}).Error
}

// UpdatePhotoPath records the stored photo path for the user.
func (r *userMySQL) UpdatePhotoPath(ctx context.Context, id uint, path string) error {
	return r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id_usuario = ?", id).
		Update("foto_perfil_url", path).Error
}
