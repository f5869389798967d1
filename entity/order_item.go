package entity

import (
	"gorm.io/gorm"
)

// OrderItem is one line of an order. An order never carries two lines
// for the same menu item; the quantity is incremented instead.
type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity" gorm:"not null"`

	OrderID uint  `json:"orderId" gorm:"uniqueIndex:idx_item_per_order"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId" gorm:"uniqueIndex:idx_item_per_order"`
	MenuItem   MenuItem `json:"-"`
}
