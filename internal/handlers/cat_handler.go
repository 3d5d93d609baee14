package handlers

import (
	"errors"
	"fmt"
	"log"

	"catshelter/internal/models"
	"catshelter/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CatHandler handles HTTP requests for the adoption catalog.
type CatHandler struct {
	service  *services.CatService
	validate *validator.Validate
}

// NewCatHandler creates a new CatHandler.
func NewCatHandler(service *services.CatService) *CatHandler {
	return &CatHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes. Reads are public; mutations
// run the full guard chain (token, identity, admin role).
func (h *CatHandler) RegisterRoutes(router fiber.Router, authGuard, identityGuard, adminGuard fiber.Handler) {
	catRoutes := router.Group("/cats")
	catRoutes.Get("/", h.HandleGetCats)
	catRoutes.Get("/:id", h.HandleGetCatByID)
	catRoutes.Post("/", authGuard, identityGuard, adminGuard, h.HandleCreateCat)
	catRoutes.Put("/:id", authGuard, identityGuard, adminGuard, h.HandleUpdateCat)
	catRoutes.Delete("/:id", authGuard, identityGuard, adminGuard, h.HandleDeleteCat)
}

// HandleGetCats retrieves all cats.
func (h *CatHandler) HandleGetCats(c *fiber.Ctx) error {
	cats, err := h.service.GetAllCats()
	if err != nil {
		log.Printf("Error getting all cats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cats",
		})
	}
	return c.JSON(cats)
}

// HandleGetCatByID retrieves a single cat by its ID.
func (h *CatHandler) HandleGetCatByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cat ID must be numeric",
		})
	}

	cat, err := h.service.GetCatByID(uint(id))
	if err != nil {
		return h.catError(c, uint(id), err)
	}
	return c.JSON(cat)
}

// HandleCreateCat creates a new cat listing.
func (h *CatHandler) HandleCreateCat(c *fiber.Ctx) error {
	var cat models.Cat
	if err := c.BodyParser(&cat); err != nil {
		log.Printf("Error parsing create cat request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	// The ID and relations are storage-owned.
	cat.ID = 0
	cat.FavoritedBy = nil

	if err := h.validate.Struct(cat); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	created, err := h.service.CreateCat(&cat)
	if err != nil {
		log.Printf("Error creating cat: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create cat",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateCat merges a partial update over an existing cat.
func (h *CatHandler) HandleUpdateCat(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cat ID must be numeric",
		})
	}

	var input services.UpdateCatInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update cat request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	cat, err := h.service.UpdateCat(uint(id), &input)
	if err != nil {
		return h.catError(c, uint(id), err)
	}
	return c.JSON(cat)
}

// HandleDeleteCat removes a cat listing.
func (h *CatHandler) HandleDeleteCat(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cat ID must be numeric",
		})
	}

	message, err := h.service.DeleteCat(uint(id))
	if err != nil {
		return h.catError(c, uint(id), err)
	}
	return c.JSON(fiber.Map{
		"message": message,
	})
}

// catError maps service errors for a given cat id onto HTTP responses.
func (h *CatHandler) catError(c *fiber.Ctx, id uint, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Cat with ID %d not found.", id),
		})
	}
	log.Printf("Error handling cat %d: %v", id, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not process cat request",
	})
}
