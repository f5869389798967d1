package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"foodmarket/entity"
	"foodmarket/repository"
)

type ReviewService struct {
	Repo         *repository.ReviewRepository
	OrderRepo    *repository.OrderRepository
	DeliveryRepo *repository.DeliveryRepository
	CustomerRepo *repository.CustomerRepository
}

func NewReviewService(
	repo *repository.ReviewRepository,
	orderRepo *repository.OrderRepository,
	deliveryRepo *repository.DeliveryRepository,
	customerRepo *repository.CustomerRepository,
) *ReviewService {
	return &ReviewService{Repo: repo, OrderRepo: orderRepo, DeliveryRepo: deliveryRepo, CustomerRepo: customerRepo}
}

type CreateReviewReq struct {
	OrderID          uint   `json:"orderId" binding:"required"`
	Comment          string `json:"comment"`
	RestaurantRating int    `json:"restaurantRating" binding:"required"`
	DriverRating     int    `json:"driverRating" binding:"required"`
}

// Create files the single review for a delivered order. Both ratings
// must be 1 through 5, the order must belong to the caller, and the
// order must have been delivered.
func (s *ReviewService) Create(userID uint, req *CreateReviewReq) (*entity.Review, error) {
	if req.RestaurantRating < 1 || req.RestaurantRating > 5 ||
		req.DriverRating < 1 || req.DriverRating > 5 {
		return nil, ErrInvalidRating
	}

	customer, err := s.CustomerRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.OrderRepo.GetForCustomer(customer.ID, req.OrderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	delivery, err := s.DeliveryRepo.GetByOrderID(req.OrderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotDelivered
	}
	if err != nil {
		return nil, err
	}
	if delivery.DeliveredAt == nil {
		return nil, ErrNotDelivered
	}

	review := &entity.Review{
		Comment:          req.Comment,
		RestaurantRating: req.RestaurantRating,
		DriverRating:     req.DriverRating,
		CommentDate:      time.Now(),
		OrderID:          req.OrderID,
		DeliveryID:       delivery.ID,
	}
	if err := s.Repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetForOrder(orderID uint) (*entity.Review, error) {
	review, err := s.Repo.GetByOrderID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	return review, err
}

func (s *ReviewService) ListForRestaurant(restID uint, limit int) ([]entity.Review, error) {
	return s.Repo.ListForRestaurant(restID, limit)
}
