package entity

import (
	"time"

	"gorm.io/gorm"
)

// Review covers both the restaurant and the driver for one delivered
// order. Ratings are integers from 1 to 5, checked by the service.
type Review struct {
	gorm.Model
	Comment          string    `json:"comment" gorm:"size:1000"`
	RestaurantRating int       `json:"restaurantRating" gorm:"not null"`
	DriverRating     int       `json:"driverRating" gorm:"not null"`
	CommentDate      time.Time `json:"commentDate"`

	OrderID uint  `json:"orderId" gorm:"uniqueIndex;not null"`
	Order   Order `json:"-"`

	DeliveryID uint     `json:"deliveryId" gorm:"uniqueIndex;not null"`
	Delivery   Delivery `json:"-"`
}
