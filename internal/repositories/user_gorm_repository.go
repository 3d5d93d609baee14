package repositories

import (
	"errors"
	"fmt"

	"catshelter/internal/models"

	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a user by their email from the database.
// The lookup is an exact match; no case normalization is applied.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetByIDWithFavorites retrieves a user together with their favorited cats.
func (r *GORMUserRepository) GetByIDWithFavorites(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("FavoritedCats").First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// AddFavorite links a cat to the user's favorites through the join table.
func (r *GORMUserRepository) AddFavorite(user *models.User, cat *models.Cat) error {
	if err := r.db.Model(user).Association("FavoritedCats").Append(cat); err != nil {
		return fmt.Errorf("failed to add favorite cat %d for user %d: %w", cat.ID, user.ID, err)
	}
	return nil
}

// RemoveFavorite unlinks a cat from the user's favorites.
func (r *GORMUserRepository) RemoveFavorite(user *models.User, cat *models.Cat) error {
	if err := r.db.Model(user).Association("FavoritedCats").Delete(cat); err != nil {
		return fmt.Errorf("failed to remove favorite cat %d for user %d: %w", cat.ID, user.ID, err)
	}
	return nil
}
