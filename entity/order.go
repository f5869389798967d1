package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderDate          time.Time `json:"orderDate"`
	SpecialInstruction string    `json:"specialInstruction" gorm:"size:512"`

	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Items []OrderItem `json:"items,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	Delivery *Delivery `json:"-"`
	Payment  *Payment  `json:"-"`
	Review   *Review   `json:"-"`
}
