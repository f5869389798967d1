package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"foodmarket/entity"
	"foodmarket/repository"
)

type DeliveryService struct {
	DB         *gorm.DB
	Repo       *repository.DeliveryRepository
	OrderRepo  *repository.OrderRepository
	DriverRepo *repository.DriverRepository
}

func NewDeliveryService(
	db *gorm.DB,
	repo *repository.DeliveryRepository,
	orderRepo *repository.OrderRepository,
	driverRepo *repository.DriverRepository,
) *DeliveryService {
	return &DeliveryService{DB: db, Repo: repo, OrderRepo: orderRepo, DriverRepo: driverRepo}
}

// ListOpenOrders returns orders nobody has claimed yet.
func (s *DeliveryService) ListOpenOrders(limit int) ([]entity.Order, error) {
	return s.OrderRepo.ListUndelivered(limit)
}

type ClaimReq struct {
	OrderID        uint `json:"orderId" binding:"required"`
	EstimateMinute int  `json:"estimateMinute" binding:"omitempty,min=1"`
}

// Claim assigns an order to the calling driver by creating its
// delivery row. The one-delivery-per-order index turns a double claim
// into a constraint violation, so exactly one driver wins.
func (s *DeliveryService) Claim(userID uint, req *ClaimReq) (*entity.Delivery, error) {
	driver, err := s.driverFor(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.OrderRepo.Get(req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	minutes := req.EstimateMinute
	if minutes <= 0 {
		minutes = 30
	}

	d := &entity.Delivery{
		EstimatedAt: time.Now().Add(time.Duration(minutes) * time.Minute),
		OrderID:     req.OrderID,
		DriverID:    driver.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, d)
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Finish marks the delivery done. A delivery that was already
// completed, or that belongs to another driver, is rejected.
func (s *DeliveryService) Finish(userID, deliveryID uint) (*entity.Delivery, error) {
	driver, err := s.driverFor(userID)
	if err != nil {
		return nil, err
	}

	var d *entity.Delivery
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		done, err := s.Repo.MarkDelivered(tx, deliveryID, driver.ID, time.Now())
		if err != nil {
			return err
		}
		if !done {
			return ErrDeliveryAlreadyDone
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d, err = s.Repo.Get(deliveryID)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DeliveryService) History(userID uint, limit int) ([]entity.Delivery, error) {
	driver, err := s.driverFor(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListForDriver(driver.ID, limit)
}

func (s *DeliveryService) driverFor(userID uint) (*entity.Driver, error) {
	driver, err := s.DriverRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	return driver, err
}
