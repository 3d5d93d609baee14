package repositories

import (
	"errors"
	"fmt"

	"catshelter/internal/models"

	"gorm.io/gorm"
)

// GORMCatRepository is a GORM implementation of CatRepository.
type GORMCatRepository struct {
	db *gorm.DB
}

// NewGORMCatRepository creates a new instance of GORMCatRepository.
func NewGORMCatRepository(db *gorm.DB) *GORMCatRepository {
	return &GORMCatRepository{
		db: db,
	}
}

// GetAll retrieves all cats with their favoriting users populated.
func (r *GORMCatRepository) GetAll() ([]models.Cat, error) {
	var cats []models.Cat
	if err := r.db.Preload("FavoritedBy").Find(&cats).Error; err != nil {
		return nil, fmt.Errorf("failed to get all cats: %w", err)
	}
	return cats, nil
}

// GetByID retrieves a single cat by its ID with favoriting users populated.
func (r *GORMCatRepository) GetByID(id uint) (*models.Cat, error) {
	var cat models.Cat
	if err := r.db.Preload("FavoritedBy").First(&cat, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cat with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get cat by ID %d: %w", id, err)
	}
	return &cat, nil
}

// Create creates a new cat in the database.
func (r *GORMCatRepository) Create(cat *models.Cat) error {
	if err := r.db.Create(cat).Error; err != nil {
		return fmt.Errorf("failed to create cat: %w", err)
	}
	return nil
}

// Update persists an existing cat record.
func (r *GORMCatRepository) Update(cat *models.Cat) error {
	// The favorite relation is owned by the user side; keep Save from
	// touching the preloaded association.
	res := r.db.Omit("FavoritedBy").Save(cat)
	if res.Error != nil {
		return fmt.Errorf("failed to update cat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not report ErrRecordNotFound for updates, so we
		// check RowsAffected to catch a vanished record.
		return fmt.Errorf("cat with ID %d: %w", cat.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a cat by its ID, clearing its favorite links first.
func (r *GORMCatRepository) Delete(id uint) error {
	cat := models.Cat{ID: id}
	if err := r.db.Model(&cat).Association("FavoritedBy").Clear(); err != nil {
		return fmt.Errorf("failed to clear favorites for cat %d: %w", id, err)
	}
	res := r.db.Delete(&models.Cat{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cat: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cat with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
