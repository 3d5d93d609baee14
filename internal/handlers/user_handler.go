package handlers

import (
	"errors"
	"log"

	"catshelter/internal/middleware"
	"catshelter/internal/models"
	"catshelter/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users and their favorites.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user routes. Favorite mutations require an
// authenticated user of any role; lookup and creation are public.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authGuard, identityGuard fiber.Handler) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/email/:email", h.HandleGetUserByEmail)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/cats/:catId/favorite", authGuard, identityGuard, h.HandleAddFavoriteCat)
	userRoutes.Delete("/cats/:catId/favorite", authGuard, identityGuard, h.HandleRemoveFavoriteCat)
}

// HandleGetUserByEmail finds a user by exact email match.
func (h *UserHandler) HandleGetUserByEmail(c *fiber.Ctx) error {
	email := c.Params("email")
	user, err := h.service.FindByEmail(email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
			})
		}
		log.Printf("Error finding user by email %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve user",
		})
	}
	return c.JSON(user)
}

// HandleCreateUser persists a user record directly.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		log.Printf("Error parsing create user request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	user.ID = 0
	user.FavoritedCats = nil

	created, err := h.service.Create(&user)
	if err != nil {
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create user",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleAddFavoriteCat adds a cat to the requesting user's favorites.
func (h *UserHandler) HandleAddFavoriteCat(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	catID, err := c.ParamsInt("catId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cat ID must be numeric",
		})
	}

	user, err := h.service.AddFavoriteCat(current.ID, uint(catID))
	if err != nil {
		return h.favoriteError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

// HandleRemoveFavoriteCat removes a cat from the requesting user's favorites.
func (h *UserHandler) HandleRemoveFavoriteCat(c *fiber.Ctx) error {
	current := middleware.CurrentUser(c)
	if current == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	catID, err := c.ParamsInt("catId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cat ID must be numeric",
		})
	}

	user, err := h.service.RemoveFavoriteCat(current.ID, uint(catID))
	if err != nil {
		return h.favoriteError(c, err)
	}
	user.Password = ""
	return c.JSON(user)
}

func (h *UserHandler) favoriteError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User or cat not found",
		})
	}
	log.Printf("Error updating favorites: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Could not update favorites",
	})
}
