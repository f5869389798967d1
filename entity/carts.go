package entity

import (
	"time"

	"gorm.io/gorm"
)

// Cart stages a user's selection before checkout. One cart per user.
// RestaurantID is set by the first entry and cleared with the last one;
// TotalCost is recomputed inside every cart mutation.
type Cart struct {
	gorm.Model
	UserID uint `json:"userId" gorm:"uniqueIndex;not null"`
	User   User `json:"-"`

	RestaurantID uint `json:"restaurantId"`

	TotalCost int64      `json:"totalCost"`
	OrderDate *time.Time `json:"orderDate,omitempty"`

	Entries []CartEntry `json:"entries" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
