package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront_backend/internal/feature/account/domain/entity"
)

// passwordCost is the bcrypt work factor used for new digests.
const passwordCost = 10

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user has that id.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateProfile overwrites name, address and phone.
	UpdateProfile(ctx context.Context, id uint, fullName string, address, phone *string) error

	// UpdatePhotoPath stores the path returned by PhotoStorage.
	UpdatePhotoPath(ctx context.Context, id uint, path string) error
}

// PhotoStorage persists uploaded profile photos.
type PhotoStorage interface {
	// Save stores the photo under name and returns the path to record on the
	// user row: a path relative to the public root, or an absolute URL.
	Save(ctx context.Context, name string, content io.Reader) (string, error)

	// Delete removes a photo previously returned by Save.
	Delete(ctx context.Context, path string) error
}

// LoginThrottle counts failed logins per email. A nil LoginThrottle disables throttling.
type LoginThrottle interface {
	Blocked(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}

// RegisterInput carries the registration form. Phone is optional.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// ProfileUpdate carries the editable profile columns.
type ProfileUpdate struct {
	UserID   uint
	FullName string
	Address  string
	Phone    string
}

// PhotoUpload carries one uploaded profile photo.
type PhotoUpload struct {
	UserID   uint
	Filename string
	Content  io.Reader
}

// accountUsecase implements registration, login and profile maintenance.
type accountUsecase struct {
	users    UserRepository
	photos   PhotoStorage
	throttle LoginThrottle
	now      func() time.Time
}

// NewAccountUsecase creates a new accountUsecase. throttle may be nil.
func NewAccountUsecase(users UserRepository, photos PhotoStorage, throttle LoginThrottle) *accountUsecase {
	return &accountUsecase{
		users:    users,
		photos:   photos,
		throttle: throttle,
		now:      time.Now,
	}
}

// Register creates a user with a bcrypt digest of the password.
func (u *accountUsecase) Register(ctx context.Context, in RegisterInput) error {
	fullName := strings.TrimSpace(in.FullName)
	email := strings.TrimSpace(in.Email)
	if fullName == "" || email == "" || in.Password == "" {
		return ErrMissingFields
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return ErrPasswordTooLong
		}
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        optional(in.Phone),
	}
	return u.users.Create(ctx, user)
}

// Login verifies the credentials and returns the user on success.
// An unknown email yields ErrUserNotFound and a wrong password ErrInvalidPassword.
func (u *accountUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	if u.throttle != nil {
		blocked, err := u.throttle.Blocked(ctx, email)
		switch {
		case err != nil:
			// an unreachable throttle store must not lock everybody out
			slog.Warn("login throttle check failed", "error", err, "email", email)
		case blocked:
			return nil, ErrTooManyAttempts
		}
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if u.throttle != nil {
			if terr := u.throttle.RecordFailure(ctx, email); terr != nil {
				slog.Warn("login throttle record failed", "error", terr, "email", email)
			}
		}
		return nil, ErrInvalidPassword
	}

	if u.throttle != nil {
		if terr := u.throttle.Reset(ctx, email); terr != nil {
			slog.Warn("login throttle reset failed", "error", terr, "email", email)
		}
	}
	return user, nil
}

// UpdateProfile overwrites name, address and phone of the user.
func (u *accountUsecase) UpdateProfile(ctx context.Context, in ProfileUpdate) error {
	if in.UserID == 0 {
		return ErrMissingUserID
	}
	return u.users.UpdateProfile(ctx, in.UserID, in.FullName, optional(in.Address), optional(in.Phone))
}

// UploadPhoto stores a new profile photo, points the user at it and removes
// the previous one. It returns the stored path.
func (u *accountUsecase) UploadPhoto(ctx context.Context, in PhotoUpload) (string, error) {
	if in.Content == nil {
		return "", ErrMissingPhoto
	}
	if in.UserID == 0 {
		return "", ErrMissingUserID
	}

	user, err := u.users.FindByID(ctx, in.UserID)
	if err != nil {
		return "", err
	}

	stored, err := u.photos.Save(ctx, PhotoFileName(in.UserID, in.Filename, u.now()), in.Content)
	if err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}

	if err := u.users.UpdatePhotoPath(ctx, in.UserID, stored); err != nil {
		if derr := u.photos.Delete(ctx, stored); derr != nil {
			slog.Warn("orphaned photo left behind", "error", derr, "path", stored)
		}
		return "", fmt.Errorf("update photo path: %w", err)
	}

	if old := user.PhotoPath; old != nil && *old != "" && *old != stored && !strings.Contains(*old, "default") {
		if err := u.photos.Delete(ctx, *old); err != nil {
			slog.Warn("previous photo not removed", "error", err, "path", *old, "user_id", in.UserID)
		}
	}
	return stored, nil
}

// PhotoFileName derives the stored file name from the owner and upload time,
// keeping the original extension: usuario_<id>_<unix millis><ext>.
func PhotoFileName(userID uint, original string, at time.Time) string {
	return fmt.Sprintf("usuario_%d_%d%s", userID, at.UnixMilli(), filepath.Ext(original))
}

// optional maps an empty string to NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
