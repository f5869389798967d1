package repository

import (
	"time"

	"gorm.io/gorm"

	"foodmarket/entity"
)

type DeliveryRepository struct{ DB *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

func (r *DeliveryRepository) Create(tx *gorm.DB, d *entity.Delivery) error {
	return tx.Create(d).Error
}

func (r *DeliveryRepository) GetByOrderID(orderID uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.Where("order_id = ?", orderID).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) Get(id uint) (*entity.Delivery, error) {
	var d entity.Delivery
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DeliveryRepository) ListForDriver(driverID uint, limit int) ([]entity.Delivery, error) {
	if limit <= 0 {
		limit = 50
	}
	var ds []entity.Delivery
	err := r.DB.Where("driver_id = ?", driverID).
		Order("id DESC").Limit(limit).
		Find(&ds).Error
	return ds, err
}

// MarkDelivered sets the delivered time only once; the row count tells
// the service whether the delivery was still open.
func (r *DeliveryRepository) MarkDelivered(tx *gorm.DB, deliveryID, driverID uint, at time.Time) (bool, error) {
	res := tx.Model(&entity.Delivery{}).
		Where("id = ? AND driver_id = ? AND delivered_at IS NULL", deliveryID, driverID).
		Update("delivered_at", at)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
