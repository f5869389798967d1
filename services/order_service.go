package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodmarket/entity"
	"foodmarket/repository"
)

const (
	deliveryFeeCents = 500
	salesTaxPercent  = 8
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	CustomerRepo *repository.CustomerRepository
	RestRepo     *repository.RestaurantRepository
	MenuRepo     *repository.MenuRepository
	PaymentRepo  *repository.PaymentRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	customerRepo *repository.CustomerRepository,
	restRepo *repository.RestaurantRepository,
	menuRepo *repository.MenuRepository,
	paymentRepo *repository.PaymentRepository,
) *OrderService {
	return &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, CustomerRepo: customerRepo,
		RestRepo: restRepo, MenuRepo: menuRepo, PaymentRepo: paymentRepo,
	}
}

// ----- DTOs -----

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"min=1"`
}

type CreateOrderReq struct {
	RestaurantID       uint          `json:"restaurantId" binding:"required"`
	SpecialInstruction string        `json:"specialInstruction"`
	Items              []OrderItemIn `json:"items" binding:"required"`
}

type PaymentIn struct {
	Method         string  `json:"method" binding:"omitempty,oneof=COD CARD PAYPAL GIFTCARD"`
	Tips           int64   `json:"tips" binding:"min=0"`
	PromoCode      *string `json:"promoCode"`
	BillingAddress string  `json:"billingAddress"`
}

type CheckoutReq struct {
	SpecialInstruction string     `json:"specialInstruction"`
	Payment            *PaymentIn `json:"payment"`
}

type CreateOrderRes struct {
	ID    uint  `json:"id"`
	Total int64 `json:"total"`
}

// Create places an order directly from an item list. Duplicate menu
// items in the request are merged into one line, keeping each order
// free of duplicate item rows.
func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*CreateOrderRes, error) {
	if len(req.Items) == 0 {
		return nil, ErrCartEmpty
	}

	customer, err := s.customerFor(userID)
	if err != nil {
		return nil, err
	}

	ok, err := s.RestRepo.Exists(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRestaurantNotFound
	}

	quantities := make(map[uint]int, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		quantities[it.MenuItemID] += it.Quantity
	}

	var subtotal int64
	lines := make([]entity.OrderItem, 0, len(quantities))
	for itemID, qty := range quantities {
		m, err := s.MenuRepo.GetItemBasics(itemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		if err != nil {
			return nil, err
		}
		if m.RestaurantID != req.RestaurantID {
			return nil, ErrCartOtherRestaurant
		}
		subtotal += m.Price * int64(qty)
		lines = append(lines, entity.OrderItem{MenuItemID: itemID, Quantity: qty})
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			OrderDate:          time.Now(),
			SpecialInstruction: req.SpecialInstruction,
			CustomerID:         customer.ID,
			RestaurantID:       req.RestaurantID,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		for i := range lines {
			lines[i].OrderID = order.ID
			if err := s.Repo.CreateItem(tx, &lines[i]); err != nil {
				return err
			}
		}
		out = CreateOrderRes{ID: order.ID, Total: subtotal}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Checkout turns the user's cart into an order: one order item per
// cart entry, an optional payment record, and an emptied cart, all in
// a single transaction. An empty cart is rejected.
func (s *OrderService) Checkout(userID uint, req *CheckoutReq) (*CreateOrderRes, error) {
	customer, err := s.customerFor(userID)
	if err != nil {
		return nil, err
	}

	var out CreateOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockCart(tx, userID)
		if err != nil {
			return err
		}

		entries, err := s.CartRepo.ListEntries(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return ErrCartEmpty
		}

		var subtotal int64
		for _, e := range entries {
			// the item may have been removed from the menu since it
			// was added to the cart
			if e.MenuItem.ID == 0 {
				return ErrMenuItemNotFound
			}
			subtotal += e.MenuItem.Price * int64(e.Quantity)
		}

		orderDate := time.Now()
		if cart.OrderDate != nil {
			orderDate = *cart.OrderDate
		}

		order := entity.Order{
			OrderDate:          orderDate,
			SpecialInstruction: req.SpecialInstruction,
			CustomerID:         customer.ID,
			RestaurantID:       cart.RestaurantID,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		for _, e := range entries {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: e.MenuItemID,
				Quantity:   e.Quantity,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}

		total := subtotal
		if req.Payment != nil {
			tax := subtotal * salesTaxPercent / 100
			total = subtotal + tax + deliveryFeeCents + req.Payment.Tips
			method := req.Payment.Method
			if method == "" {
				method = entity.PaymentMethodCard
			}
			billing := req.Payment.BillingAddress
			if billing == "" {
				billing = customer.BillingAddress
			}
			p := entity.Payment{
				Tips:           req.Payment.Tips,
				DeliveryFee:    deliveryFeeCents,
				SalesTax:       tax,
				TotalPrice:     total,
				Amount:         total,
				Method:         method,
				PromoCode:      req.Payment.PromoCode,
				Reference:      uuid.NewString(),
				BillingAddress: billing,
				PaidAt:         time.Now(),
				OrderID:        order.ID,
			}
			if err := s.PaymentRepo.Create(tx, &p); err != nil {
				return err
			}
		}

		if err := s.CartRepo.ClearEntries(tx, cart.ID); err != nil {
			return err
		}

		out = CreateOrderRes{ID: order.ID, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ----- Reads -----

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	customer, err := s.customerFor(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListForCustomer(customer.ID, limit)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	customer, err := s.customerFor(userID)
	if err != nil {
		return nil, err
	}
	o, err := s.Repo.GetForCustomer(customer.ID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

type OwnerOrderListOut struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func (s *OrderService) ListForRestaurant(userID, restID uint, page, limit int) (*OwnerOrderListOut, error) {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrForbidden
	}

	items, total, err := s.Repo.ListForRestaurant(restID, page, limit)
	if err != nil {
		return nil, err
	}
	return &OwnerOrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) customerFor(userID uint) (*entity.Customer, error) {
	customer, err := s.CustomerRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	return customer, err
}
