package repositories

import "catshelter/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByIDWithFavorites(id uint) (*models.User, error)
	AddFavorite(user *models.User, cat *models.Cat) error
	RemoveFavorite(user *models.User, cat *models.Cat) error
}
