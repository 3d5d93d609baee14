package repositories

import (
	"fmt"
	"sync"

	"catshelter/internal/models"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users  map[uint]models.User
	nextID uint
	mu     sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:  make(map[uint]models.User),
		nextID: 1,
	}
}

// Create adds a new user, assigning an ID when none is set.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	} else if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.users[user.ID] = *user
	return nil
}

// GetByEmail returns the user with the given email (exact match).
func (r *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %d: %w", id, ErrNotFound)
	}
	return &user, nil
}

// GetByIDWithFavorites returns a user with their favorites populated.
// The mock keeps favorites on the record, so this is GetByID.
func (r *MockUserRepository) GetByIDWithFavorites(id uint) (*models.User, error) {
	return r.GetByID(id)
}

// AddFavorite links a cat to the user's favorites.
func (r *MockUserRepository) AddFavorite(user *models.User, cat *models.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return fmt.Errorf("user with ID %d: %w", user.ID, ErrNotFound)
	}
	for _, fav := range stored.FavoritedCats {
		if fav.ID == cat.ID {
			return nil
		}
	}
	stored.FavoritedCats = append(stored.FavoritedCats, *cat)
	r.users[user.ID] = stored
	user.FavoritedCats = stored.FavoritedCats
	return nil
}

// RemoveFavorite unlinks a cat from the user's favorites.
func (r *MockUserRepository) RemoveFavorite(user *models.User, cat *models.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.users[user.ID]
	if !ok {
		return fmt.Errorf("user with ID %d: %w", user.ID, ErrNotFound)
	}
	kept := stored.FavoritedCats[:0]
	for _, fav := range stored.FavoritedCats {
		if fav.ID != cat.ID {
			kept = append(kept, fav)
		}
	}
	stored.FavoritedCats = kept
	r.users[user.ID] = stored
	user.FavoritedCats = stored.FavoritedCats
	return nil
}
