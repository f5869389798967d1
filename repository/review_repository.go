package repository

import (
	"gorm.io/gorm"

	"foodmarket/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) GetByOrderID(orderID uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.DB.Where("order_id = ?", orderID).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) ListForRestaurant(restID uint, limit int) ([]entity.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	var reviews []entity.Review
	err := r.DB.
		Joins("JOIN orders ON orders.id = reviews.order_id").
		Where("orders.restaurant_id = ?", restID).
		Order("reviews.id DESC").Limit(limit).
		Find(&reviews).Error
	return reviews, err
}
