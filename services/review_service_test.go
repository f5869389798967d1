package services

import (
	"errors"
	"testing"
	"time"

	"foodmarket/entity"
)

func TestReviewRatingBounds(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	svc := newReviewService(db)
	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(user.ID, &CreateReviewReq{
			OrderID:          1,
			RestaurantRating: rating,
			DriverRating:     3,
		})
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: want ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestReviewRequiresDelivery(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	customer := seedCustomer(t, db, user)

	order := entity.Order{OrderDate: time.Now(), CustomerID: customer.ID, RestaurantID: rest.ID}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("order: %v", err)
	}

	_, err := newReviewService(db).Create(user.ID, &CreateReviewReq{
		OrderID: order.ID, RestaurantRating: 4, DriverRating: 5,
	})
	if !errors.Is(err, ErrNotDelivered) {
		t.Fatalf("want ErrNotDelivered, got %v", err)
	}
}

func TestReviewOnceDelivered(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	customer := seedCustomer(t, db, user)
	driverUser := seedUser(t, db, "sam@example.com", entity.RoleDriver)
	driver := seedDriver(t, db, driverUser)

	order := entity.Order{OrderDate: time.Now(), CustomerID: customer.ID, RestaurantID: rest.ID}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("order: %v", err)
	}
	now := time.Now()
	delivery := entity.Delivery{
		EstimatedAt: now, DeliveredAt: &now,
		OrderID: order.ID, DriverID: driver.ID,
	}
	if err := db.Create(&delivery).Error; err != nil {
		t.Fatalf("delivery: %v", err)
	}

	svc := newReviewService(db)
	review, err := svc.Create(user.ID, &CreateReviewReq{
		OrderID: order.ID, Comment: "great", RestaurantRating: 5, DriverRating: 4,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if review.DeliveryID != delivery.ID {
		t.Errorf("review delivery = %d, want %d", review.DeliveryID, delivery.ID)
	}

	// one review per order
	_, err = svc.Create(user.ID, &CreateReviewReq{
		OrderID: order.ID, RestaurantRating: 2, DriverRating: 2,
	})
	if !IsConstraintViolation(err) {
		t.Fatalf("want constraint violation on second review, got %v", err)
	}
}
