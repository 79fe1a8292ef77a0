package service

import (
	"errors"
	"fmt"

	"github.com/creatorlab/creator-backend/internal/common"
	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/creatorlab/creator-backend/internal/repository"
	"github.com/creatorlab/creator-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login, and profile lookup.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{userRepo: userRepo, jwtManager: jwtManager}
}

// AuthResponse carries the issued token together with the account.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates an account with a bcrypt-hashed credential and
// issues a token. A taken email fails with ErrUserAlreadyExists.
func (s *AuthService) Register(email, password, name string) (*AuthResponse, error) {
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, common.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:    email,
		Password: string(hashed),
		Name:     name,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both fail with ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &AuthResponse{Token: token, User: user}, nil
}

// GetProfile returns the account for the given id.
func (s *AuthService) GetProfile(userID uint64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
