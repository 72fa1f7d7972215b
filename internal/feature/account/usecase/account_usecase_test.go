package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storefront_backend/internal/feature/account/domain/entity"
	"storefront_backend/internal/shared/apperr"
)

// mockUserRepository is a mock implementation of UserRepository.
// It simulates database operations during testing.
type mockUserRepository struct {
	CreateFunc          func(ctx context.Context, user *entity.User) error
	FindByEmailFunc     func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*entity.User, error)
	UpdateProfileFunc   func(ctx context.Context, id uint, fullName string, address, phone *string) error
	UpdatePhotoPathFunc func(ctx context.Context, id uint, path string) error
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

// UpdateProfile is the mock implementation of the UpdateProfile method.
func (m *mockUserRepository) UpdateProfile(ctx context.Context, id uint, fullName string, address, phone *string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, fullName, address, phone)
	}
	return nil
}

// UpdatePhotoPath is the mock implementation of the UpdatePhotoPath method.
func (m *mockUserRepository) UpdatePhotoPath(ctx context.Context, id uint, path string) error {
	if m.UpdatePhotoPathFunc != nil {
		return m.UpdatePhotoPathFunc(ctx, id, path)
	}
	return nil
}

// mockPhotoStorage records saved and deleted photos.
type mockPhotoStorage struct {
	saved   map[string][]byte
	deleted []string
	saveErr error
}

func newMockPhotoStorage() *mockPhotoStorage {
	return &mockPhotoStorage{saved: map[string][]byte{}}
}

func (m *mockPhotoStorage) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	b, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}
	path := "uploads/perfiles/" + name
	m.saved[path] = b
	return path, nil
}

func (m *mockPhotoStorage) Delete(ctx context.Context, path string) error {
	m.deleted = append(m.deleted, path)
	return nil
}

// mockThrottle is an in-memory LoginThrottle.
type mockThrottle struct {
	failures map[string]int
	max      int
	err      error
}

func newMockThrottle(max int) *mockThrottle {
	return &mockThrottle{failures: map[string]int{}, max: max}
}

func (m *mockThrottle) Blocked(ctx context.Context, key string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.failures[key] >= m.max, nil
}

func (m *mockThrottle) RecordFailure(ctx context.Context, key string) error {
	m.failures[key]++
	return nil
}

func (m *mockThrottle) Reset(ctx context.Context, key string) error {
	delete(m.failures, key)
	return nil
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAccountUsecase_Register(t *testing.T) {
	t.Run("stores a verifiable digest, never the plaintext", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}

		err := NewAccountUsecase(repo, nil, nil).Register(context.Background(), RegisterInput{
			FullName: "Ana López", Email: "ana@x.com", Password: "secret",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEqual(t, "secret", created.PasswordHash, "password is not hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))
		cost, err := bcrypt.Cost([]byte(created.PasswordHash))
		require.NoError(t, err)
		assert.Equal(t, 10, cost)
		assert.Nil(t, created.Phone, "empty phone should be stored as NULL")
	})

	t.Run("optional phone is kept", func(t *testing.T) {
		var created *entity.User
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				return nil
			},
		}

		err := NewAccountUsecase(repo, nil, nil).Register(context.Background(), RegisterInput{
			FullName: "Ana", Email: "ana@x.com", Password: "secret", Phone: "5512345678",
		})

		require.NoError(t, err)
		require.NotNil(t, created.Phone)
		assert.Equal(t, "5512345678", *created.Phone)
	})

	t.Run("missing fields", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("repository should not be called")
				return nil
			},
		}
		uc := NewAccountUsecase(repo, nil, nil)

		for _, in := range []RegisterInput{
			{Email: "ana@x.com", Password: "secret"},
			{FullName: "Ana", Password: "secret"},
			{FullName: "Ana", Email: "ana@x.com"},
			{FullName: "   ", Email: "ana@x.com", Password: "secret"},
		} {
			err := uc.Register(context.Background(), in)
			assert.ErrorIs(t, err, ErrMissingFields)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		}
	})

	t.Run("password longer than bcrypt accepts", func(t *testing.T) {
		err := NewAccountUsecase(&mockUserRepository{}, nil, nil).Register(context.Background(), RegisterInput{
			FullName: "Ana", Email: "ana@x.com", Password: strings.Repeat("a", 73),
		})

		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})

	t.Run("duplicate email propagates", func(t *testing.T) {
		repo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error { return ErrEmailAlreadyExists },
		}

		err := NewAccountUsecase(repo, nil, nil).Register(context.Background(), RegisterInput{
			FullName: "Ana", Email: "ana@x.com", Password: "secret",
		})

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})
}

func TestAccountUsecase_Login(t *testing.T) {
	testUser := &entity.User{ID: 7, FullName: "Ana", Email: "ana@x.com", PasswordHash: hashFor(t, "secret")}
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == testUser.Email {
				return testUser, nil
			}
			return nil, ErrUserNotFound
		},
	}

	t.Run("successful login", func(t *testing.T) {
		user, err := NewAccountUsecase(repo, nil, nil).Login(context.Background(), "ana@x.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := NewAccountUsecase(repo, nil, nil).Login(context.Background(), "nobody@x.com", "secret")

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := NewAccountUsecase(repo, nil, nil).Login(context.Background(), "ana@x.com", "nope")

		assert.ErrorIs(t, err, ErrInvalidPassword)
		assert.ErrorIs(t, err, apperr.ErrUnauthorized)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := NewAccountUsecase(repo, nil, nil).Login(context.Background(), "", "secret")

		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("store failure is not a not-found", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		failing := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) { return nil, dbErr },
		}

		_, err := NewAccountUsecase(failing, nil, nil).Login(context.Background(), "ana@x.com", "secret")

		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("throttle locks out after repeated failures and resets on success", func(t *testing.T) {
		throttle := newMockThrottle(2)
		uc := NewAccountUsecase(repo, nil, throttle)
		ctx := context.Background()

		_, err := uc.Login(ctx, "ana@x.com", "bad1")
		assert.ErrorIs(t, err, ErrInvalidPassword)
		_, err = uc.Login(ctx, "ana@x.com", "bad2")
		assert.ErrorIs(t, err, ErrInvalidPassword)

		_, err = uc.Login(ctx, "ana@x.com", "secret")
		assert.ErrorIs(t, err, ErrTooManyAttempts, "correct password is refused while locked out")

		delete(throttle.failures, "ana@x.com")
		throttle.failures["ana@x.com"] = 1
		_, err = uc.Login(ctx, "ana@x.com", "secret")
		require.NoError(t, err)
		assert.NotContains(t, throttle.failures, "ana@x.com")
	})

	t.Run("unavailable throttle does not block logins", func(t *testing.T) {
		throttle := newMockThrottle(1)
		throttle.err = errors.New("redis down")

		_, err := NewAccountUsecase(repo, nil, throttle).Login(context.Background(), "ana@x.com", "secret")

		assert.NoError(t, err)
	})
}

func TestAccountUsecase_UpdateProfile(t *testing.T) {
	t.Run("updates the four columns", func(t *testing.T) {
		var gotID uint
		var gotName string
		var gotAddr, gotPhone *string
		repo := &mockUserRepository{
			UpdateProfileFunc: func(ctx context.Context, id uint, fullName string, address, phone *string) error {
				gotID, gotName, gotAddr, gotPhone = id, fullName, address, phone
				return nil
			},
		}

		err := NewAccountUsecase(repo, nil, nil).UpdateProfile(context.Background(), ProfileUpdate{
			UserID: 3, FullName: "Ana María", Address: "Av. Juárez 10", Phone: "",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(3), gotID)
		assert.Equal(t, "Ana María", gotName)
		require.NotNil(t, gotAddr)
		assert.Equal(t, "Av. Juárez 10", *gotAddr)
		assert.Nil(t, gotPhone)
	})

	t.Run("missing user id", func(t *testing.T) {
		err := NewAccountUsecase(&mockUserRepository{}, nil, nil).UpdateProfile(context.Background(), ProfileUpdate{FullName: "x"})

		assert.ErrorIs(t, err, ErrMissingUserID)
	})
}

func TestAccountUsecase_UploadPhoto(t *testing.T) {
	fixed := time.UnixMilli(1700000000123)

	t.Run("stores the photo, records it and removes the previous one", func(t *testing.T) {
		old := "uploads/perfiles/usuario_5_1.png"
		var recorded string
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, PhotoPath: &old}, nil
			},
			UpdatePhotoPathFunc: func(ctx context.Context, id uint, path string) error {
				recorded = path
				return nil
			},
		}
		photos := newMockPhotoStorage()
		uc := NewAccountUsecase(repo, photos, nil)
		uc.now = func() time.Time { return fixed }

		path, err := uc.UploadPhoto(context.Background(), PhotoUpload{
			UserID: 5, Filename: "me.jpg", Content: bytes.NewReader([]byte("jpeg")),
		})

		require.NoError(t, err)
		assert.Equal(t, "uploads/perfiles/usuario_5_1700000000123.jpg", path)
		assert.Equal(t, path, recorded)
		assert.Equal(t, []byte("jpeg"), photos.saved[path])
		assert.Equal(t, []string{old}, photos.deleted)
	})

	t.Run("default placeholder is never deleted", func(t *testing.T) {
		old := "imagenes/perfil-default.png"
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, PhotoPath: &old}, nil
			},
		}
		photos := newMockPhotoStorage()

		_, err := NewAccountUsecase(repo, photos, nil).UploadPhoto(context.Background(), PhotoUpload{
			UserID: 5, Filename: "me.png", Content: strings.NewReader("png"),
		})

		require.NoError(t, err)
		assert.Empty(t, photos.deleted)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewAccountUsecase(&mockUserRepository{}, newMockPhotoStorage(), nil).UploadPhoto(context.Background(), PhotoUpload{UserID: 5})

		assert.ErrorIs(t, err, ErrMissingPhoto)
	})

	t.Run("missing user id", func(t *testing.T) {
		_, err := NewAccountUsecase(&mockUserRepository{}, newMockPhotoStorage(), nil).UploadPhoto(context.Background(), PhotoUpload{
			Filename: "a.png", Content: strings.NewReader("png"),
		})

		assert.ErrorIs(t, err, ErrMissingUserID)
	})

	t.Run("unknown user saves nothing", func(t *testing.T) {
		photos := newMockPhotoStorage()

		_, err := NewAccountUsecase(&mockUserRepository{}, photos, nil).UploadPhoto(context.Background(), PhotoUpload{
			UserID: 99, Filename: "a.png", Content: strings.NewReader("png"),
		})

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Empty(t, photos.saved)
	})

	t.Run("failed row update removes the new file", func(t *testing.T) {
		repo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) { return &entity.User{ID: id}, nil },
			UpdatePhotoPathFunc: func(ctx context.Context, id uint, path string) error {
				return errors.New("deadlock")
			},
		}
		photos := newMockPhotoStorage()
		uc := NewAccountUsecase(repo, photos, nil)
		uc.now = func() time.Time { return fixed }

		_, err := uc.UploadPhoto(context.Background(), PhotoUpload{UserID: 5, Filename: "a.png", Content: strings.NewReader("png")})

		assert.Error(t, err)
		assert.Equal(t, []string{"uploads/perfiles/usuario_5_1700000000123.png"}, photos.deleted)
	})
}

func TestPhotoFileName(t *testing.T) {
	at := time.UnixMilli(1712345678901)

	assert.Equal(t, "usuario_12_1712345678901.jpeg", PhotoFileName(12, "selfie.jpeg", at))
	assert.Equal(t, "usuario_12_1712345678901", PhotoFileName(12, "noext", at))
	assert.Equal(t, "usuario_3_1712345678901.PNG", PhotoFileName(3, "dir/Pic.PNG", at))
}
