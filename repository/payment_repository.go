package repository

import (
	"gorm.io/gorm"

	"foodmarket/entity"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) GetByOrderID(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ---------------- Cards on file ----------------

func (r *PaymentRepository) CreateCard(card *entity.PaymentInformation) error {
	return r.DB.Create(card).Error
}

func (r *PaymentRepository) ListCards(customerID uint) ([]entity.PaymentInformation, error) {
	var cards []entity.PaymentInformation
	err := r.DB.Where("customer_id = ?", customerID).Find(&cards).Error
	return cards, err
}

func (r *PaymentRepository) DeleteCard(customerID, cardID uint) (bool, error) {
	res := r.DB.Where("id = ? AND customer_id = ?", cardID, customerID).
		Delete(&entity.PaymentInformation{})
	return res.RowsAffected == 1, res.Error
}
