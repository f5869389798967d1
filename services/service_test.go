package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodmarket/configs"
	"foodmarket/entity"
	"foodmarket/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	// a second connection would get its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewMenuRepository(db),
		repository.NewPaymentRepository(db),
	)
}

func newDeliveryService(db *gorm.DB) *DeliveryService {
	return NewDeliveryService(
		db,
		repository.NewDeliveryRepository(db),
		repository.NewOrderRepository(db),
		repository.NewDriverRepository(db),
	)
}

func newReviewService(db *gorm.DB) *ReviewService {
	return NewReviewService(
		repository.NewReviewRepository(db),
		repository.NewOrderRepository(db),
		repository.NewDeliveryRepository(db),
		repository.NewCustomerRepository(db),
	)
}

// ---------------- fixtures ----------------

func seedUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := &entity.User{Email: email, Password: "x", Role: role}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return u
}

func seedCustomer(t *testing.T, db *gorm.DB, user *entity.User) *entity.Customer {
	t.Helper()
	c := &entity.Customer{
		FirstName: "Pat", LastName: "Doe",
		Email:  user.Email,
		UserID: user.ID,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c
}

func seedDriver(t *testing.T, db *gorm.DB, user *entity.User) *entity.Driver {
	t.Helper()
	d := &entity.Driver{
		FirstName: "Sam", LastName: "Ride",
		Email:  user.Email,
		UserID: user.ID,
	}
	if err := db.Create(d).Error; err != nil {
		t.Fatalf("seed driver: %v", err)
	}
	return d
}

func seedRestaurant(t *testing.T, db *gorm.DB, owner *entity.User, slug string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{
		Name:        slug,
		Slug:        slug,
		PhoneNumber: slug[:min(len(slug), 10)],
		Email:       slug + "@example.com",
		UserID:      owner.ID,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed restaurant %s: %v", slug, err)
	}
	return r
}

func seedItem(t *testing.T, db *gorm.DB, rest *entity.Restaurant, name string, price int64) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{Name: name, Price: price, RestaurantID: rest.ID}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed item %s: %v", name, err)
	}
	return m
}

func cartEntries(t *testing.T, db *gorm.DB, userID uint) []entity.CartEntry {
	t.Helper()
	var cart entity.Cart
	if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}
	var entries []entity.CartEntry
	if err := db.Where("cart_id = ?", cart.ID).Find(&entries).Error; err != nil {
		t.Fatalf("load entries: %v", err)
	}
	return entries
}
