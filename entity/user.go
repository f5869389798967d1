package entity

import (
	"gorm.io/gorm"
)

// User is the authentication account. Customer and Driver profiles
// hang off it one-to-one; a restaurant owner is a User with role owner.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"size:256;uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"size:20;not null;default:customer"`

	Customer *Customer `json:"-"`
	Driver   *Driver   `json:"-"`
	Cart     *Cart     `json:"-"`

	RestaurantsOwned []Restaurant `json:"-" gorm:"foreignKey:UserID"`
}

const (
	RoleCustomer = "customer"
	RoleOwner    = "owner"
	RoleDriver   = "driver"
	RoleAdmin    = "admin"
)
