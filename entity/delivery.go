package entity

import (
	"time"

	"gorm.io/gorm"
)

// Delivery is one-to-one with its order. DeliveredAt stays nil until
// the driver marks the order delivered.
type Delivery struct {
	gorm.Model
	EstimatedAt time.Time  `json:"estimatedAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	OrderID uint  `json:"orderId" gorm:"uniqueIndex;not null"`
	Order   Order `json:"-"`

	DriverID uint   `json:"driverId"`
	Driver   Driver `json:"-"`
}
