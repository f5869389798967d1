package entity

import (
	"gorm.io/gorm"
)

type City struct {
	gorm.Model
	Name         string `json:"name" gorm:"size:40;not null"`
	Neighborhood string `json:"neighborhood" gorm:"size:40"`

	StateCode string `json:"stateCode" gorm:"size:2"`
	State     State  `json:"-" gorm:"foreignKey:StateCode;references:Code"`

	ZipCodes []ZipCode `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
