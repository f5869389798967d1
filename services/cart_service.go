package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"foodmarket/entity"
	"foodmarket/repository"
)

// CartService stages a user's selection before checkout. Every
// mutation runs in one transaction holding the cart's row lock, so two
// concurrent adds to the same cart cannot lose an update.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type CartView struct {
	Cart      *entity.Cart `json:"cart"`
	TotalCost int64        `json:"totalCost"`
}

func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetCartWithEntries(userID)
	if err != nil {
		return nil, err
	}
	return &CartView{Cart: c, TotalCost: c.TotalCost}, nil
}

// AddItem puts one unit of the menu item into the user's cart: a new
// entry at quantity 1, or an increment of the existing one. Items from
// a second restaurant are rejected until the cart is emptied.
func (s *CartService) AddItem(userID, menuItemID uint) error {
	item, err := s.MenuRepo.GetItemBasics(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockCart(tx, userID)
		if err != nil {
			return err
		}

		if cart.RestaurantID != 0 && cart.RestaurantID != item.RestaurantID {
			return ErrCartOtherRestaurant
		}
		if cart.RestaurantID == 0 {
			if err := tx.Model(cart).Update("restaurant_id", item.RestaurantID).Error; err != nil {
				return err
			}
		}

		entry, err := s.CartRepo.GetEntry(tx, cart.ID, item.ID)
		switch {
		case err == nil:
			entry.Quantity++
			if err := s.CartRepo.SaveEntry(tx, entry); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			entry = &entity.CartEntry{CartID: cart.ID, MenuItemID: item.ID, Quantity: 1}
			if err := s.CartRepo.CreateEntry(tx, entry); err != nil {
				return err
			}
		default:
			return err
		}

		return s.CartRepo.RecomputeTotal(tx, cart.ID)
	})
}

// RemoveItem takes one unit of the menu item out of the cart. The
// entry is deleted when its quantity reaches zero; removing an item
// that is not in the cart is a no-op.
func (s *CartService) RemoveItem(userID, menuItemID uint) error {
	_, err := s.MenuRepo.GetItemBasics(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockCart(tx, userID)
		if err != nil {
			return err
		}

		entry, err := s.CartRepo.GetEntry(tx, cart.ID, menuItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		entry.Quantity--
		if entry.Quantity <= 0 {
			if err := s.CartRepo.DeleteEntry(tx, entry); err != nil {
				return err
			}
		} else {
			if err := s.CartRepo.SaveEntry(tx, entry); err != nil {
				return err
			}
		}

		return s.CartRepo.RecomputeTotal(tx, cart.ID)
	})
}

// SetOrderDate stores the date the user wants the order placed under.
func (s *CartService) SetOrderDate(userID uint, at time.Time) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.LockCart(tx, userID)
		if err != nil {
			return err
		}
		return tx.Model(cart).Update("order_date", at).Error
	})
}
