package services

import (
	"errors"
	"fmt"

	"catshelter/internal/models"
	"catshelter/internal/repositories"
)

// ErrNotFound is returned when a requested user or cat does not exist.
var ErrNotFound = errors.New("not found")

// UserService handles business logic for users and their favorites.
type UserService struct {
	userRepo repositories.UserRepository
	catRepo  repositories.CatRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, catRepo repositories.CatRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		catRepo:  catRepo,
	}
}

// FindByEmail looks up a user by exact email match.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// Create persists a user record. A plaintext password, when provided,
// is hashed before it reaches storage.
func (s *UserService) Create(user *models.User) (*models.User, error) {
	if user.Password != "" {
		digest, err := HashPassword(user.Password)
		if err != nil {
			return nil, err
		}
		user.Password = digest
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// AddFavoriteCat adds a cat to the user's favorites. Adding a cat that is
// already favorited is a no-op, the set never holds duplicates.
func (s *UserService) AddFavoriteCat(userID, catID uint) (*models.User, error) {
	user, err := s.userRepo.GetByIDWithFavorites(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user or cat not found: %w", ErrNotFound)
		}
		return nil, err
	}
	cat, err := s.catRepo.GetByID(catID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user or cat not found: %w", ErrNotFound)
		}
		return nil, err
	}

	for _, fav := range user.FavoritedCats {
		if fav.ID == cat.ID {
			return user, nil
		}
	}
	if err := s.userRepo.AddFavorite(user, cat); err != nil {
		return nil, err
	}
	return s.userRepo.GetByIDWithFavorites(userID)
}

// RemoveFavoriteCat removes a cat from the user's favorites. Removing a
// cat that is not in the set is a no-op, not an error.
func (s *UserService) RemoveFavoriteCat(userID, catID uint) (*models.User, error) {
	user, err := s.userRepo.GetByIDWithFavorites(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}

	for _, fav := range user.FavoritedCats {
		if fav.ID == catID {
			if err := s.userRepo.RemoveFavorite(user, &models.Cat{ID: catID}); err != nil {
				return nil, err
			}
			return s.userRepo.GetByIDWithFavorites(userID)
		}
	}
	return user, nil
}
