package services

import (
	"errors"
	"fmt"
	"time"

	"catshelter/internal/models"
	"catshelter/internal/repositories"
)

var (
	// ErrUserExists is returned when registering an already-taken email.
	ErrUserExists = errors.New("User already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// AuthResponse is the outward representation of an authenticated user.
// It never carries the password digest.
type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// AuthService handles registration and login.
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new account and returns it with a fresh access token.
func (s *AuthService) Register(name, email, password string, role models.Role) (*AuthResponse, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		// Storage faults propagate unchanged; only a clean miss means
		// the email is free.
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	digest, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = models.RoleUser
	}
	user := &models.User{
		Name:     name,
		Email:    email,
		Password: digest,
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return s.respond(user)
}

// Login authenticates by email and password and returns an access token.
func (s *AuthService) Login(email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.respond(user)
}

func (s *AuthService) respond(user *models.User) (*AuthResponse, error) {
	accessToken, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AccessToken: accessToken,
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}, nil
}
