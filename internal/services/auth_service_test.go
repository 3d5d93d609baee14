package services_test

import (
	"errors"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"catshelter/internal/models"
	"catshelter/internal/repositories"
	"catshelter/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDWithFavorites(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) AddFavorite(user *models.User, cat *models.Cat) error {
	args := m.Called(user, cat)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFavorite(user *models.User, cat *models.Cat) error {
	args := m.Called(user, cat)
	return args.Error(0)
}

func notFoundErr(email string) error {
	return fmt.Errorf("user with email %s: %w", email, repositories.ErrNotFound)
}

func newTestTokenService() *services.TokenService {
	return services.NewTokenService(services.TokenConfig{
		Secret: "test_jwt_secret",
		TTL:    time.Hour,
	})
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Register(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := newTestTokenService()
	authService := services.NewAuthService(mockRepo, tokens)

	// Test successful registration
	mockRepo.On("GetByEmail", "new@example.com").Return(nil, notFoundErr("new@example.com")).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		user.ID = 1
		user.CreatedAt = time.Now()
	}).Return(nil).Once()

	resp, err := authService.Register("New User", "new@example.com", "password123", models.RoleAdmin)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "New User", resp.Name)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	mockRepo.AssertExpectations(t)

	// The persisted record carries a bcrypt digest, not the plaintext
	createdUser := mockRepo.Calls[1].Arguments.Get(0).(*models.User)
	assert.NotEqual(t, "password123", createdUser.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("password123")))

	// Test duplicate email
	mockRepo.On("GetByEmail", "new@example.com").Return(&models.User{ID: 1, Email: "new@example.com"}, nil).Once()
	_, err = authService.Register("New User", "new@example.com", "password123", models.RoleUser)
	assert.ErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestAuthService_Register_LookupFaultPropagates(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, newTestTokenService())

	storageErr := errors.New("connection refused")
	mockRepo.On("GetByEmail", "any@example.com").Return(nil, storageErr).Once()

	_, err := authService.Register("Any", "any@example.com", "password123", models.RoleUser)
	assert.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, services.ErrUserExists)
	mockRepo.AssertNumberOfCalls(t, "Create", 0)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	tokens := newTestTokenService()
	authService := services.NewAuthService(mockRepo, tokens)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       42,
		Name:     "Test User",
		Email:    "test@example.com",
		Password: string(hashed),
		Role:     models.RoleUser,
	}

	// Test successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	resp, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.Email, resp.Email)

	// The issued token carries the identity claims
	claims, err := tokens.Verify(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.ID)
	assert.Equal(t, "test@example.com", claims.Email)
	mockRepo.AssertExpectations(t)

	// Wrong password and unknown email fail identically
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, errWrongPassword := authService.Login("test@example.com", "wrongpassword")
	assert.ErrorIs(t, errWrongPassword, services.ErrInvalidCredentials)

	mockRepo.On("GetByEmail", "ghost@example.com").Return(nil, notFoundErr("ghost@example.com")).Once()
	_, errUnknownEmail := authService.Login("ghost@example.com", "password123")
	assert.ErrorIs(t, errUnknownEmail, services.ErrInvalidCredentials)

	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	mockRepo.AssertExpectations(t)
}
