package repository

import (
	"gorm.io/gorm"

	"foodmarket/entity"
)

type DriverRepository struct{ DB *gorm.DB }

func NewDriverRepository(db *gorm.DB) *DriverRepository { return &DriverRepository{DB: db} }

func (r *DriverRepository) Create(d *entity.Driver) error {
	return r.DB.Create(d).Error
}

func (r *DriverRepository) GetByUserID(userID uint) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.DB.Where("user_id = ?", userID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DriverRepository) Get(id uint) (*entity.Driver, error) {
	var d entity.Driver
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DriverRepository) Update(d *entity.Driver) error {
	return r.DB.Save(d).Error
}
