package entity

import (
	"gorm.io/gorm"
)

// MenuItem prices are stored in cents.
// A restaurant never lists two items with the same name.
type MenuItem struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:80;uniqueIndex:idx_item_per_restaurant;not null"`
	Description string `json:"description" gorm:"size:512"`
	Price       int64  `json:"price" gorm:"not null"`
	Ingredients string `json:"ingredients" gorm:"size:512"`
	ImageLink   string `json:"imageLink"`

	CategoryID *uint         `json:"categoryId"`
	Category   *MenuCategory `json:"-" gorm:"constraint:OnDelete:SET NULL;"`

	RestaurantID uint       `json:"restaurantId" gorm:"uniqueIndex:idx_item_per_restaurant"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
