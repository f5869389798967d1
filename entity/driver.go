package entity

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	FirstName   string `json:"firstName" gorm:"size:50;not null"`
	LastName    string `json:"lastName" gorm:"size:50;not null"`
	Email       string `json:"email" gorm:"size:256;uniqueIndex;not null"`
	PhoneNumber string `json:"phoneNumber" gorm:"size:10"`
	Address     string `json:"address" gorm:"size:256"`

	ZipCode *string  `json:"zipCode" gorm:"size:5"`
	Zip     *ZipCode `json:"-" gorm:"foreignKey:ZipCode;references:Code;constraint:OnDelete:SET NULL;"`

	// one profile per account
	UserID uint `json:"userId" gorm:"uniqueIndex;not null"`
	User   User `json:"-"`

	Deliveries []Delivery `json:"-"`
}
