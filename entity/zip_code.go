package entity

// ZipCode is keyed by the five-digit code itself.
type ZipCode struct {
	Code string `json:"code" gorm:"primaryKey;size:5"`

	CityID uint `json:"cityId"`
	City   City `json:"-"`
}
