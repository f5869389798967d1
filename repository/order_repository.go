package repository

import (
	"time"

	"gorm.io/gorm"

	"foodmarket/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForCustomer(customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND customer_id = ?", orderID, customerID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurantId"`
	OrderDate    time.Time `json:"orderDate"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForCustomer(customerID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, order_date, created_at").
		Where("customer_id = ?", customerID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) ListForRestaurant(restID uint, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := r.DB.Model(&entity.Order{}).Where("restaurant_id = ?", restID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := r.DB.Where("restaurant_id = ?", restID).
		Preload("Items").
		Order("id DESC").Limit(limit).Offset(offset).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) GetItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ListUndelivered returns orders with no delivery row yet; these are
// the orders a driver can claim.
func (r *OrderRepository) ListUndelivered(limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	var orders []entity.Order
	err := r.DB.
		Joins("LEFT JOIN deliveries ON deliveries.order_id = orders.id AND deliveries.deleted_at IS NULL").
		Where("deliveries.id IS NULL").
		Order("orders.id").Limit(limit).
		Find(&orders).Error
	return orders, err
}
