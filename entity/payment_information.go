package entity

import (
	"time"

	"gorm.io/gorm"
)

// PaymentInformation is a card kept on file for a customer.
type PaymentInformation struct {
	gorm.Model
	NameOnCard   string    `json:"nameOnCard" gorm:"size:256;not null"`
	CardNumber   string    `json:"cardNumber" gorm:"size:256;uniqueIndex;not null"`
	SecurityCode string    `json:"-" gorm:"size:256"`
	ExpiresAt    time.Time `json:"expiresAt"`

	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"`
}
