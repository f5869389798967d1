package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodmarket/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetCartWithEntries returns the user's cart for reading. A user with
// no cart yet gets an empty unsaved one so callers can render it.
func (r *CartRepository) GetCartWithEntries(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Entries").
		Preload("Entries.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LockCart loads (creating if needed) the user's cart inside tx and
// takes a row lock on it, so concurrent mutations of the same cart
// serialise on the database. sqlite has a single writer and rejects
// FOR UPDATE, so the clause is only added on real servers.
func (r *CartRepository) LockCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	q := tx
	if tx.Dialector.Name() != "sqlite" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var c entity.Cart
	err := q.Where("user_id = ?", userID).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetEntry(tx *gorm.DB, cartID, menuItemID uint) (*entity.CartEntry, error) {
	var e entity.CartEntry
	err := tx.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *CartRepository) SaveEntry(tx *gorm.DB, e *entity.CartEntry) error {
	return tx.Save(e).Error
}

func (r *CartRepository) CreateEntry(tx *gorm.DB, e *entity.CartEntry) error {
	return tx.Create(e).Error
}

// DeleteEntry removes the row for good. A soft-deleted entry would
// still hold its (cart, item) slot in the unique index and block the
// item from ever being re-added.
func (r *CartRepository) DeleteEntry(tx *gorm.DB, e *entity.CartEntry) error {
	return tx.Unscoped().Delete(e).Error
}

func (r *CartRepository) ListEntries(tx *gorm.DB, cartID uint) ([]entity.CartEntry, error) {
	var entries []entity.CartEntry
	err := tx.Where("cart_id = ?", cartID).Preload("MenuItem").Find(&entries).Error
	return entries, err
}

func (r *CartRepository) CountEntries(tx *gorm.DB, cartID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.CartEntry{}).Where("cart_id = ?", cartID).Count(&cnt).Error
	return cnt, err
}

// RecomputeTotal re-derives total_cost from the entries and current
// item prices and persists it. When the cart empties, its restaurant
// lock is released too.
func (r *CartRepository) RecomputeTotal(tx *gorm.DB, cartID uint) error {
	var total int64
	err := tx.Model(&entity.CartEntry{}).
		Select("COALESCE(SUM(cart_entries.quantity * menu_items.price), 0)").
		Joins("JOIN menu_items ON menu_items.id = cart_entries.menu_item_id").
		Where("cart_entries.cart_id = ?", cartID).
		Scan(&total).Error
	if err != nil {
		return err
	}

	updates := map[string]any{"total_cost": total}
	if total == 0 {
		var cnt int64
		if err := tx.Model(&entity.CartEntry{}).Where("cart_id = ?", cartID).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			updates["restaurant_id"] = 0
		}
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Updates(updates).Error
}

// ClearEntries empties the cart after checkout and releases the
// restaurant lock. Entries are staging rows with no audit value, so
// they are removed for good rather than soft-deleted.
func (r *CartRepository) ClearEntries(tx *gorm.DB, cartID uint) error {
	if err := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartEntry{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Updates(map[string]any{"total_cost": 0, "restaurant_id": 0}).Error
}
