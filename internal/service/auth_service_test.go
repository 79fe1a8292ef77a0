package service

import (
	"errors"
	"testing"
	"time"

	"github.com/creatorlab/creator-backend/internal/common"
	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/creatorlab/creator-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *mockUserRepo) FindByID(id uint64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(email string) (*domain.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Tests ---

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager("test-secret-key-for-testing-only-32b!", time.Hour)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.User).ID = 42
		}).
		Return(nil)

	resp, err := svc.Register("new@example.com", "password123", "New User")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint64(42), resp.User.ID)
	// Stored credential is a hash, never the plaintext.
	assert.NotEqual(t, "password123", resp.User.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.User.Password), []byte("password123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("FindByEmail", "taken@example.com").
		Return(&domain.User{ID: 1, Email: "taken@example.com"}, nil)

	_, err := svc.Register("taken@example.com", "password123", "")
	assert.ErrorIs(t, err, common.ErrUserAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	repo.On("FindByEmail", "user@example.com").
		Return(&domain.User{ID: 7, Email: "user@example.com", Password: string(hashed)}, nil)

	resp, err := svc.Login("user@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint64(7), resp.User.ID)
}

func TestLogin_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	repo.On("FindByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByEmail", "user@example.com").
		Return(&domain.User{ID: 7, Email: "user@example.com", Password: string(hashed)}, nil)

	_, errUnknown := svc.Login("nobody@example.com", "password123")
	_, errWrongPw := svc.Login("user@example.com", "wrong")
	assert.ErrorIs(t, errUnknown, common.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, common.ErrInvalidCredentials)
}

func TestGetProfile_NotFound(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	repo.On("FindByID", uint64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetProfile(99)
	assert.ErrorIs(t, err, common.ErrUserNotFound)
}

func TestGetProfile_RepositoryErrorPassesThrough(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, newTestJWTManager())

	dbErr := errors.New("connection lost")
	repo.On("FindByID", uint64(1)).Return(nil, dbErr)

	_, err := svc.GetProfile(1)
	assert.ErrorIs(t, err, dbErr)
}
