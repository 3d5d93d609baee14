package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"catshelter/internal/models"
	"catshelter/internal/repositories"

	"github.com/google/uuid"
)

// EventPublisher publishes catalog events to the message broker.
// *rabbitmq.Client satisfies it; a nil publisher disables publishing.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// UpdateCatInput carries a partial cat update. Nil fields retain the
// existing values.
type UpdateCatInput struct {
	Name        *string        `json:"name" validate:"omitempty,min=1"`
	Breed       *string        `json:"breed" validate:"omitempty,min=1"`
	Age         *int           `json:"age" validate:"omitempty,gte=0,lte=30"`
	Gender      *models.Gender `json:"gender" validate:"omitempty,oneof=male female"`
	Description *string        `json:"description"`
	Images      []string       `json:"images" validate:"omitempty,min=1,dive,url"`
}

// CatService handles business logic for the adoption catalog.
type CatService struct {
	repo      repositories.CatRepository
	publisher EventPublisher
}

// NewCatService creates a new CatService.
func NewCatService(repo repositories.CatRepository, publisher EventPublisher) *CatService {
	return &CatService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateCat persists a new cat listing and announces it on the event bus.
func (s *CatService) CreateCat(cat *models.Cat) (*models.Cat, error) {
	if err := s.repo.Create(cat); err != nil {
		return nil, err
	}
	s.publishEvent("cat.created", cat.ID, cat.Name)
	return cat, nil
}

// GetAllCats retrieves every listing with its favoriting users populated.
func (s *CatService) GetAllCats() ([]models.Cat, error) {
	return s.repo.GetAll()
}

// GetCatByID retrieves a single listing.
func (s *CatService) GetCatByID(id uint) (*models.Cat, error) {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("cat with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return cat, nil
}

// UpdateCat merges the provided fields over the existing record. Fields
// absent from the input keep their prior values.
func (s *CatService) UpdateCat(id uint, input *UpdateCatInput) (*models.Cat, error) {
	cat, err := s.GetCatByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		cat.Name = *input.Name
	}
	if input.Breed != nil {
		cat.Breed = *input.Breed
	}
	if input.Age != nil {
		cat.Age = input.Age
	}
	if input.Gender != nil {
		cat.Gender = *input.Gender
	}
	if input.Description != nil {
		cat.Description = *input.Description
	}
	if input.Images != nil {
		cat.Images = input.Images
	}

	if err := s.repo.Update(cat); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("cat with ID %d not found: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return cat, nil
}

// DeleteCat removes a listing and announces the removal.
func (s *CatService) DeleteCat(id uint) (string, error) {
	cat, err := s.GetCatByID(id)
	if err != nil {
		return "", err
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", fmt.Errorf("cat with ID %d not found: %w", id, ErrNotFound)
		}
		return "", err
	}
	s.publishEvent("cat.deleted", cat.ID, cat.Name)
	return fmt.Sprintf("Cat %d deleted successfully", id), nil
}

// publishEvent sends a catalog event. Publishing is best effort, a broker
// failure never fails the request that caused the event.
func (s *CatService) publishEvent(eventType string, catID uint, name string) {
	if s.publisher == nil {
		return
	}
	event := map[string]interface{}{
		"eventId": uuid.New().String(),
		"type":    eventType,
		"catId":   catID,
		"name":    name,
		"at":      time.Now().Format(time.RFC3339),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.publisher.Publish("", "cat_events", body); err != nil {
		log.Printf("Warning: failed to publish %s event for cat %d: %v", eventType, catID, err)
	}
}
