package repository

import (
	"foodmarket/entity"

	"gorm.io/gorm"
)

// GeoRepository serves the State -> City -> ZipCode reference chain.
type GeoRepository struct{ DB *gorm.DB }

func NewGeoRepository(db *gorm.DB) *GeoRepository { return &GeoRepository{DB: db} }

func (r *GeoRepository) ListStates() ([]entity.State, error) {
	var states []entity.State
	err := r.DB.Order("code").Find(&states).Error
	return states, err
}

func (r *GeoRepository) ListCities(stateCode string) ([]entity.City, error) {
	var cities []entity.City
	q := r.DB.Order("name")
	if stateCode != "" {
		q = q.Where("state_code = ?", stateCode)
	}
	err := q.Find(&cities).Error
	return cities, err
}

func (r *GeoRepository) ListZipCodes(cityID uint) ([]entity.ZipCode, error) {
	var zips []entity.ZipCode
	q := r.DB.Order("code")
	if cityID != 0 {
		q = q.Where("city_id = ?", cityID)
	}
	err := q.Find(&zips).Error
	return zips, err
}

func (r *GeoRepository) GetZipCode(code string) (*entity.ZipCode, error) {
	var z entity.ZipCode
	if err := r.DB.Preload("City").Preload("City.State").First(&z, "code = ?", code).Error; err != nil {
		return nil, err
	}
	return &z, nil
}

func (r *GeoRepository) ZipCodeExists(code string) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.ZipCode{}).Where("code = ?", code).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
