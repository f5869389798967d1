package services

import (
	"errors"
	"testing"
	"time"

	"foodmarket/entity"
)

func TestCheckoutCreatesOrderFromCart(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	itemA := seedItem(t, db, rest, "Carnitas", 899)
	itemB := seedItem(t, db, rest, "Al Pastor", 999)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	customer := seedCustomer(t, db, user)

	cartSvc := newCartService(db)
	cartSvc.AddItem(user.ID, itemA.ID)
	cartSvc.AddItem(user.ID, itemA.ID)
	cartSvc.AddItem(user.ID, itemB.ID)

	out, err := newOrderService(db).Checkout(user.ID, &CheckoutReq{})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if out.Total != 2*899+999 {
		t.Errorf("total = %d, want %d", out.Total, 2*899+999)
	}

	var order entity.Order
	if err := db.Preload("Items").First(&order, out.ID).Error; err != nil {
		t.Fatalf("load order: %v", err)
	}
	if order.CustomerID != customer.ID {
		t.Errorf("order customer = %d, want %d", order.CustomerID, customer.ID)
	}
	if order.RestaurantID != rest.ID {
		t.Errorf("order restaurant = %d, want %d", order.RestaurantID, rest.ID)
	}
	if len(order.Items) != 2 {
		t.Fatalf("want 2 order items, got %d", len(order.Items))
	}
	got := map[uint]int{}
	for _, it := range order.Items {
		got[it.MenuItemID] = it.Quantity
	}
	if got[itemA.ID] != 2 || got[itemB.ID] != 1 {
		t.Errorf("item quantities = %v", got)
	}

	if entries := cartEntries(t, db, user.ID); len(entries) != 0 {
		t.Errorf("cart not cleared after checkout: %+v", entries)
	}
	var cart entity.Cart
	db.Where("user_id = ?", user.ID).First(&cart)
	if cart.TotalCost != 0 || cart.RestaurantID != 0 {
		t.Errorf("cart not reset: total=%d restaurant=%d", cart.TotalCost, cart.RestaurantID)
	}
}

func TestReAddAfterCheckout(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	cartSvc := newCartService(db)
	if err := cartSvc.AddItem(user.ID, item.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := newOrderService(db).Checkout(user.ID, &CheckoutReq{}); err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	// the cleared cart starts a fresh cycle with the same items
	if err := cartSvc.AddItem(user.ID, item.ID); err != nil {
		t.Fatalf("re-add after checkout: %v", err)
	}
	entries := cartEntries(t, db, user.ID)
	if len(entries) != 1 || entries[0].Quantity != 1 {
		t.Fatalf("want fresh entry with quantity 1, got %+v", entries)
	}
	var cart entity.Cart
	db.Where("user_id = ?", user.ID).First(&cart)
	if cart.RestaurantID != rest.ID || cart.TotalCost != 899 {
		t.Errorf("cart not restarted: restaurant=%d total=%d", cart.RestaurantID, cart.TotalCost)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	_, err := newOrderService(db).Checkout(user.ID, &CheckoutReq{})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty, got %v", err)
	}

	var count int64
	db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("order created from empty cart")
	}
}

func TestCheckoutWithoutProfileRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)

	_, err := newOrderService(db).Checkout(user.ID, &CheckoutReq{})
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("want ErrProfileNotFound, got %v", err)
	}
}

func TestCheckoutCreatesPayment(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 1000)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	cartSvc := newCartService(db)
	cartSvc.AddItem(user.ID, item.ID)

	promo := "SAVE5"
	out, err := newOrderService(db).Checkout(user.ID, &CheckoutReq{
		Payment: &PaymentIn{Method: entity.PaymentMethodPayPal, Tips: 200, PromoCode: &promo},
	})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	var p entity.Payment
	if err := db.Where("order_id = ?", out.ID).First(&p).Error; err != nil {
		t.Fatalf("load payment: %v", err)
	}
	wantTax := int64(1000 * salesTaxPercent / 100)
	wantTotal := 1000 + wantTax + deliveryFeeCents + 200
	if p.TotalPrice != wantTotal || out.Total != wantTotal {
		t.Errorf("total = %d/%d, want %d", p.TotalPrice, out.Total, wantTotal)
	}
	if p.Method != entity.PaymentMethodPayPal {
		t.Errorf("method = %s", p.Method)
	}
	if p.PromoCode == nil || *p.PromoCode != promo {
		t.Errorf("promo = %v", p.PromoCode)
	}
	if p.Reference == "" {
		t.Errorf("payment reference not generated")
	}
}

func TestCheckoutUsesCartOrderDate(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	cartSvc := newCartService(db)
	cartSvc.AddItem(user.ID, item.ID)
	when := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	if err := cartSvc.SetOrderDate(user.ID, when); err != nil {
		t.Fatalf("SetOrderDate: %v", err)
	}

	out, err := newOrderService(db).Checkout(user.ID, &CheckoutReq{})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	var order entity.Order
	db.First(&order, out.ID)
	if !order.OrderDate.Equal(when) {
		t.Errorf("order date = %v, want %v", order.OrderDate, when)
	}
}

func TestCreateMergesDuplicateItems(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	rest := seedRestaurant(t, db, owner, "tacos")
	item := seedItem(t, db, rest, "Carnitas", 899)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	out, err := newOrderService(db).Create(user.ID, &CreateOrderReq{
		RestaurantID: rest.ID,
		Items: []OrderItemIn{
			{MenuItemID: item.ID, Quantity: 1},
			{MenuItemID: item.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var items []entity.OrderItem
	db.Where("order_id = ?", out.ID).Find(&items)
	if len(items) != 1 {
		t.Fatalf("want merged single line, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", items[0].Quantity)
	}
}

func TestCreateRejectsForeignMenuItem(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@example.com", entity.RoleOwner)
	restA := seedRestaurant(t, db, owner, "tacos")
	restB := seedRestaurant(t, db, owner, "pizza")
	itemB := seedItem(t, db, restB, "Margherita", 1299)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	_, err := newOrderService(db).Create(user.ID, &CreateOrderReq{
		RestaurantID: restA.ID,
		Items:        []OrderItemIn{{MenuItemID: itemB.ID, Quantity: 1}},
	})
	if !errors.Is(err, ErrCartOtherRestaurant) {
		t.Fatalf("want ErrCartOtherRestaurant, got %v", err)
	}
}
