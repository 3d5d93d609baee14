package models

// Gender of a cat listed for adoption.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Cat represents an adoption listing.
type Cat struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	Name        string   `json:"name" gorm:"type:varchar(100)" validate:"required"`
	Breed       string   `json:"breed" gorm:"type:varchar(100)" validate:"required"`
	Age         *int     `json:"age,omitempty" validate:"omitempty,gte=0,lte=30"`
	Gender      Gender   `json:"gender" gorm:"type:varchar(8)" validate:"required,oneof=male female"`
	Description string   `json:"description,omitempty" gorm:"type:text"`
	Images      []string `json:"images" gorm:"serializer:json" validate:"required,min=1,dive,url"`

	// FavoritedBy is the inverse side of the user/cat favorite relation.
	FavoritedBy []User `json:"favoritedBy,omitempty" gorm:"many2many:user_favorite_cats"`
}
