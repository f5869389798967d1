package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name" gorm:"size:80;not null"`
	Address     string `json:"address" gorm:"size:256"`
	Slug        string `json:"slug" gorm:"size:256;uniqueIndex;not null"`
	PhoneNumber string `json:"phoneNumber" gorm:"size:10;uniqueIndex;not null"`
	Email       string `json:"email" gorm:"size:256;uniqueIndex;not null"`
	Description string `json:"description" gorm:"size:256"`
	ImageLink   string `json:"imageLink"`

	ZipCode *string  `json:"zipCode" gorm:"size:5"`
	Zip     *ZipCode `json:"-" gorm:"foreignKey:ZipCode;references:Code;constraint:OnDelete:SET NULL;"`

	UserID uint `json:"userId"` // owner account
	User   User `json:"-"`

	Cuisines []CuisineType  `json:"cuisines,omitempty" gorm:"many2many:restaurant_cuisines;"`
	Hours    []OpeningHours `json:"hours,omitempty" gorm:"many2many:restaurant_hours;"`

	Categories []MenuCategory `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Items      []MenuItem     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Orders     []Order        `json:"-"`
}
