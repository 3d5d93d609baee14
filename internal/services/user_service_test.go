package services_test

import (
	"testing"

	"catshelter/internal/models"
	"catshelter/internal/repositories"
	"catshelter/internal/services"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// favorites tests use the in-memory repositories so the join behavior is
// exercised end to end rather than stubbed.
func setupUserService(t *testing.T) (*services.UserService, *repositories.MockUserRepository, *repositories.MockCatRepository) {
	t.Helper()
	userRepo := repositories.NewMockUserRepository()
	catRepo := repositories.NewMockCatRepository()
	return services.NewUserService(userRepo, catRepo), userRepo, catRepo
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	userService, _, _ := setupUserService(t)

	user, err := userService.Create(&models.User{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "plaintext-secret",
	})
	assert.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "plaintext-secret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plaintext-secret")))
}

func TestUserService_FindByEmail(t *testing.T) {
	userService, userRepo, _ := setupUserService(t)

	seeded := &models.User{Name: "Jane", Email: "jane@example.com"}
	assert.NoError(t, userRepo.Create(seeded))

	found, err := userService.FindByEmail("jane@example.com")
	assert.NoError(t, err)
	assert.Equal(t, seeded.ID, found.ID)

	// Exact match only: a case variation is a miss
	_, err = userService.FindByEmail("Jane@example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUserService_AddFavoriteCat_Idempotent(t *testing.T) {
	userService, userRepo, catRepo := setupUserService(t)

	user := &models.User{Name: "Jane", Email: "jane@example.com"}
	assert.NoError(t, userRepo.Create(user))
	cat := &models.Cat{Name: "Whiskers", Breed: "Tabby", Gender: models.GenderMale, Images: []string{"http://example.com/cat.jpg"}}
	assert.NoError(t, catRepo.Create(cat))

	updated, err := userService.AddFavoriteCat(user.ID, cat.ID)
	assert.NoError(t, err)
	assert.Len(t, updated.FavoritedCats, 1)

	// Favoriting the same cat again leaves the set at one entry
	updated, err = userService.AddFavoriteCat(user.ID, cat.ID)
	assert.NoError(t, err)
	assert.Len(t, updated.FavoritedCats, 1)
	assert.Equal(t, cat.ID, updated.FavoritedCats[0].ID)
}

func TestUserService_AddFavoriteCat_MissingEntities(t *testing.T) {
	userService, userRepo, _ := setupUserService(t)

	user := &models.User{Name: "Jane", Email: "jane@example.com"}
	assert.NoError(t, userRepo.Create(user))

	// Missing cat
	_, err := userService.AddFavoriteCat(user.ID, 999)
	assert.ErrorIs(t, err, services.ErrNotFound)

	// Missing user
	_, err = userService.AddFavoriteCat(999, 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUserService_RemoveFavoriteCat(t *testing.T) {
	userService, userRepo, catRepo := setupUserService(t)

	user := &models.User{Name: "Jane", Email: "jane@example.com"}
	assert.NoError(t, userRepo.Create(user))
	cat := &models.Cat{Name: "Whiskers", Breed: "Tabby", Gender: models.GenderMale, Images: []string{"http://example.com/cat.jpg"}}
	assert.NoError(t, catRepo.Create(cat))

	_, err := userService.AddFavoriteCat(user.ID, cat.ID)
	assert.NoError(t, err)

	updated, err := userService.RemoveFavoriteCat(user.ID, cat.ID)
	assert.NoError(t, err)
	assert.Len(t, updated.FavoritedCats, 0)

	// Removing a cat not in the set is a no-op, not an error
	updated, err = userService.RemoveFavoriteCat(user.ID, cat.ID)
	assert.NoError(t, err)
	assert.Len(t, updated.FavoritedCats, 0)

	// Missing user still fails
	_, err = userService.RemoveFavoriteCat(999, cat.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
