package entity

import (
	"gorm.io/gorm"
)

const (
	Monday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// OpeningHours is one weekday time slot, shared across restaurants.
// The same (weekday, opens, closes) slot is never stored twice.
type OpeningHours struct {
	gorm.Model
	Weekday  int    `json:"weekday" gorm:"uniqueIndex:idx_opening_slot;not null"`
	OpensAt  string `json:"opensAt" gorm:"size:5;uniqueIndex:idx_opening_slot;not null"`
	ClosesAt string `json:"closesAt" gorm:"size:5;uniqueIndex:idx_opening_slot;not null"`

	Restaurants []Restaurant `json:"-" gorm:"many2many:restaurant_hours;"`
}
