package models

import "time"

// Role is the coarse permission tier attached to a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account in the adoption service.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)"` // bcrypt digest, never serialized
	Role      Role      `json:"role" gorm:"type:varchar(16);default:user" validate:"omitempty,oneof=user admin"`
	CreatedAt time.Time `json:"createdAt"`

	// FavoritedCats is the owning side of the user/cat favorite relation.
	FavoritedCats []Cat `json:"favoritedCats,omitempty" gorm:"many2many:user_favorite_cats"`
}
