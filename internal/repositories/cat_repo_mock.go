package repositories

import (
	"fmt"
	"sync"

	"catshelter/internal/models"
)

// MockCatRepository is an in-memory implementation of CatRepository.
type MockCatRepository struct {
	cats   map[uint]models.Cat
	nextID uint
	mu     sync.RWMutex
}

// NewMockCatRepository creates a new instance of MockCatRepository.
func NewMockCatRepository() *MockCatRepository {
	return &MockCatRepository{
		cats:   make(map[uint]models.Cat),
		nextID: 1,
	}
}

// GetAll returns all cats.
func (r *MockCatRepository) GetAll() ([]models.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catList := make([]models.Cat, 0, len(r.cats))
	for _, c := range r.cats {
		catList = append(catList, c)
	}
	return catList, nil
}

// GetByID returns a cat by its ID.
func (r *MockCatRepository) GetByID(id uint) (*models.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cat, ok := r.cats[id]
	if !ok {
		return nil, fmt.Errorf("cat with ID %d: %w", id, ErrNotFound)
	}
	return &cat, nil
}

// Create adds a new cat, assigning an ID when none is set.
func (r *MockCatRepository) Create(cat *models.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cat.ID == 0 {
		cat.ID = r.nextID
		r.nextID++
	} else if cat.ID >= r.nextID {
		r.nextID = cat.ID + 1
	}
	r.cats[cat.ID] = *cat
	return nil
}

// Update modifies an existing cat.
func (r *MockCatRepository) Update(cat *models.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cats[cat.ID]; !ok {
		return fmt.Errorf("cat with ID %d: %w", cat.ID, ErrNotFound)
	}
	r.cats[cat.ID] = *cat
	return nil
}

// Delete removes a cat by its ID.
func (r *MockCatRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.cats[id]; !ok {
		return fmt.Errorf("cat with ID %d: %w", id, ErrNotFound)
	}
	delete(r.cats, id)
	return nil
}
