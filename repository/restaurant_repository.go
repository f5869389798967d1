package repository

import (
	"foodmarket/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) FindAll() ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	err := r.DB.
		Preload("Cuisines").
		Preload("Hours").
		Order("name").
		Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Cuisines").
		Preload("Hours").
		First(&rest, id).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	err := r.DB.
		Preload("Cuisines").
		Preload("Hours").
		Where("slug = ?", slug).
		First(&rest).Error
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

// Delete removes the restaurant; categories and items go with it.
func (r *RestaurantRepository) Delete(id uint) error {
	return r.DB.Select("Categories", "Items").Delete(&entity.Restaurant{Model: gorm.Model{ID: id}}).Error
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND user_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *RestaurantRepository) ReplaceCuisines(rest *entity.Restaurant, cuisines []entity.CuisineType) error {
	return r.DB.Model(rest).Association("Cuisines").Replace(cuisines)
}

func (r *RestaurantRepository) ReplaceHours(rest *entity.Restaurant, hours []entity.OpeningHours) error {
	return r.DB.Model(rest).Association("Hours").Replace(hours)
}

func (r *RestaurantRepository) FindCuisinesByIDs(ids []uint) ([]entity.CuisineType, error) {
	var rows []entity.CuisineType
	err := r.DB.Where("id IN ?", ids).Find(&rows).Error
	return rows, err
}

// FirstOrCreateHours reuses an existing weekday slot when one matches.
func (r *RestaurantRepository) FirstOrCreateHours(h *entity.OpeningHours) error {
	return r.DB.
		Where("weekday = ? AND opens_at = ? AND closes_at = ?", h.Weekday, h.OpensAt, h.ClosesAt).
		FirstOrCreate(h).Error
}
