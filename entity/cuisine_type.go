package entity

import (
	"gorm.io/gorm"
)

// CuisineType tags restaurants: Japanese, Italian, fast food, etc.
type CuisineType struct {
	gorm.Model
	Name string `json:"name" gorm:"size:80;uniqueIndex;not null"`

	Restaurants []Restaurant `json:"-" gorm:"many2many:restaurant_cuisines;"`
}
