package repository

import (
	"foodmarket/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// ---------------- Categories ----------------

func (r *MenuRepository) CreateCategory(cat *entity.MenuCategory) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) ListCategories(restaurantID uint) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("name").Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) GetCategory(id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) UpdateCategory(cat *entity.MenuCategory) error {
	return r.DB.Save(cat).Error
}

// DeleteCategory leaves the category's items in place with a null
// category, matching the schema's SET NULL rule. The delete is hard:
// a soft-deleted row would keep the name taken in the per-restaurant
// unique index.
func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Unscoped().Delete(&entity.MenuCategory{}, id).Error
}

// ---------------- Items ----------------

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) ListItems(restaurantID uint, categoryID *uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.Where("restaurant_id = ?", restaurantID).Order("name")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) GetItem(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// GetItemBasics loads only what cart and order math needs.
func (r *MenuRepository) GetItemBasics(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Select("id, price, restaurant_id").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) UpdateItem(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

// DeleteItem removes the row for good so the name can be reused on
// the restaurant's menu. An item referenced by order history keeps its
// foreign keys and the delete surfaces as a constraint violation.
func (r *MenuRepository) DeleteItem(id uint) error {
	return r.DB.Unscoped().Delete(&entity.MenuItem{}, id).Error
}
