package entity

import (
	"gorm.io/gorm"
)

// CartEntry is one menu item with a positive quantity inside a cart.
// A cart never holds two entries for the same item.
type CartEntry struct {
	gorm.Model
	Quantity int `json:"quantity" gorm:"not null"`

	CartID uint `json:"cartId" gorm:"uniqueIndex:idx_entry_per_cart"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId" gorm:"uniqueIndex:idx_entry_per_cart"`
	MenuItem   MenuItem `json:"-"`
}
