package entity

import (
	"gorm.io/gorm"
)

// MenuCategory groups items on one restaurant's menu.
// A restaurant never has two categories with the same name.
type MenuCategory struct {
	gorm.Model
	Name string `json:"name" gorm:"size:60;uniqueIndex:idx_category_per_restaurant;not null"`

	RestaurantID uint       `json:"restaurantId" gorm:"uniqueIndex:idx_category_per_restaurant"`
	Restaurant   Restaurant `json:"-"`

	Items []MenuItem `json:"-" gorm:"foreignKey:CategoryID"`
}
