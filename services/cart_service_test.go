package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"foodmarket/entity"
)

func TestAddItemCreatesEntry(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	if err := svc.AddItem(user.ID, item.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	entries := cartEntries(t, db, user.ID)
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	if entries[0].Quantity != 1 {
		t.Errorf("want quantity 1, got %d", entries[0].Quantity)
	}

	var cart entity.Cart
	if err := db.Where("user_id = ?", user.ID).First(&cart).Error; err != nil {
		t.Fatalf("load cart: %v", err)
	}
	if cart.RestaurantID != rest.ID {
		t.Errorf("cart restaurant = %d, want %d", cart.RestaurantID, rest.ID)
	}
	if cart.TotalCost != 899 {
		t.Errorf("total = %d, want 899", cart.TotalCost)
	}
}

func TestAddItemIncrementsExistingEntry(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	for i := 0; i < 3; i++ {
		if err := svc.AddItem(user.ID, item.ID); err != nil {
			t.Fatalf("AddItem #%d: %v", i+1, err)
		}
	}

	entries := cartEntries(t, db, user.ID)
	if len(entries) != 1 {
		t.Fatalf("want 1 entry after repeat adds, got %d", len(entries))
	}
	if entries[0].Quantity != 3 {
		t.Errorf("want quantity 3, got %d", entries[0].Quantity)
	}

	var cart entity.Cart
	db.Where("user_id = ?", user.ID).First(&cart)
	if cart.TotalCost != 3*899 {
		t.Errorf("total = %d, want %d", cart.TotalCost, 3*899)
	}
}

func TestAddItemUnknownItem(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	if err := svc.AddItem(user.ID, 9999); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("want ErrMenuItemNotFound, got %v", err)
	}
}

func TestAddItemFromSecondRestaurantRejected(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	restA := seedRestaurant(t, db, owner, "tacos")
	restB := seedRestaurant(t, db, owner, "pizza")
	itemA := seedItem(t, db, restA, "Carnitas", 899)
	itemB := seedItem(t, db, restB, "Margherita", 1299)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	if err := svc.AddItem(user.ID, itemA.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := svc.AddItem(user.ID, itemB.ID); !errors.Is(err, ErrCartOtherRestaurant) {
		t.Fatalf("want ErrCartOtherRestaurant, got %v", err)
	}
}

func TestRemoveItemDecrementsQuantity(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	svc.AddItem(user.ID, item.ID)
	svc.AddItem(user.ID, item.ID)
	if err := svc.RemoveItem(user.ID, item.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	entries := cartEntries(t, db, user.ID)
	if len(entries) != 1 || entries[0].Quantity != 1 {
		t.Fatalf("want one entry with quantity 1, got %+v", entries)
	}

	var cart entity.Cart
	db.Where("user_id = ?", user.ID).First(&cart)
	if cart.TotalCost != 899 {
		t.Errorf("total = %d, want 899", cart.TotalCost)
	}
}

func TestRemoveItemDeletesEntryAtZero(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	svc.AddItem(user.ID, item.ID)
	if err := svc.RemoveItem(user.ID, item.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}

	if entries := cartEntries(t, db, user.ID); len(entries) != 0 {
		t.Fatalf("want empty cart, got %+v", entries)
	}

	// emptying the cart releases its restaurant and zeroes the total
	var cart entity.Cart
	db.Where("user_id = ?", user.ID).First(&cart)
	if cart.RestaurantID != 0 || cart.TotalCost != 0 {
		t.Errorf("cart not reset: restaurant=%d total=%d", cart.RestaurantID, cart.TotalCost)
	}
}

func TestReAddAfterRemove(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	if err := svc.AddItem(user.ID, item.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := svc.RemoveItem(user.ID, item.ID); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	// the deleted entry must not keep holding its slot in the
	// one-entry-per-item index
	if err := svc.AddItem(user.ID, item.ID); err != nil {
		t.Fatalf("re-add after remove: %v", err)
	}

	entries := cartEntries(t, db, user.ID)
	if len(entries) != 1 || entries[0].Quantity != 1 {
		t.Fatalf("want fresh entry with quantity 1, got %+v", entries)
	}
}

func TestRemoveItemAbsentEntryIsNoop(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	itemA := seedItem(t, db, rest, "Carnitas", 899)
	itemB := seedItem(t, db, rest, "Al Pastor", 999)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	svc.AddItem(user.ID, itemA.ID)
	if err := svc.RemoveItem(user.ID, itemB.ID); err != nil {
		t.Fatalf("removing absent entry should be a no-op, got %v", err)
	}

	entries := cartEntries(t, db, user.ID)
	if len(entries) != 1 || entries[0].Quantity != 1 {
		t.Fatalf("cart changed by no-op remove: %+v", entries)
	}
}

func TestRemoveItemUnknownItem(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	svc := newCartService(db)
	if err := svc.RemoveItem(user.ID, 9999); !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("want ErrMenuItemNotFound, got %v", err)
	}
}

func TestOneCartPerUser(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	if err := db.Create(&entity.Cart{UserID: user.ID}).Error; err != nil {
		t.Fatalf("first cart: %v", err)
	}
	err := db.Create(&entity.Cart{UserID: user.ID}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("want duplicate key on second cart, got %v", err)
	}
}

func TestDuplicateEntryPerCartRejected(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	cart := entity.Cart{UserID: user.ID, RestaurantID: rest.ID}
	if err := db.Create(&cart).Error; err != nil {
		t.Fatalf("cart: %v", err)
	}
	if err := db.Create(&entity.CartEntry{CartID: cart.ID, MenuItemID: item.ID, Quantity: 1}).Error; err != nil {
		t.Fatalf("first entry: %v", err)
	}
	err := db.Create(&entity.CartEntry{CartID: cart.ID, MenuItemID: item.ID, Quantity: 1}).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("want duplicate key on second entry, got %v", err)
	}
}
