package entity

// State is keyed by its two-letter postal code.
type State struct {
	Code string `json:"code" gorm:"primaryKey;size:2"`
	Name string `json:"name" gorm:"size:30;not null"`

	Cities []City `json:"-" gorm:"foreignKey:StateCode;references:Code;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
