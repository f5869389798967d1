package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"foodmarket/entity"
	"foodmarket/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

// ---------------- Categories ----------------

type CategoryReq struct {
	Name string `json:"name" binding:"required"`
}

func (s *MenuService) CreateCategory(userID, restID uint, req *CategoryReq) (*entity.MenuCategory, error) {
	if err := s.requireOwner(userID, restID); err != nil {
		return nil, err
	}
	cat := &entity.MenuCategory{Name: strings.TrimSpace(req.Name), RestaurantID: restID}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) ListCategories(restID uint) ([]entity.MenuCategory, error) {
	return s.Repo.ListCategories(restID)
}

func (s *MenuService) RenameCategory(userID, restID, catID uint, req *CategoryReq) (*entity.MenuCategory, error) {
	if err := s.requireOwner(userID, restID); err != nil {
		return nil, err
	}
	cat, err := s.Repo.GetCategory(catID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	if cat.RestaurantID != restID {
		return nil, ErrForbidden
	}
	cat.Name = strings.TrimSpace(req.Name)
	if err := s.Repo.UpdateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *MenuService) DeleteCategory(userID, restID, catID uint) error {
	if err := s.requireOwner(userID, restID); err != nil {
		return err
	}
	cat, err := s.Repo.GetCategory(catID)
	if err != nil {
		return err
	}
	if cat.RestaurantID != restID {
		return ErrForbidden
	}
	return s.Repo.DeleteCategory(catID)
}

// ---------------- Items ----------------

type MenuItemReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=1"`
	Ingredients string `json:"ingredients"`
	ImageLink   string `json:"imageLink"`
	CategoryID  *uint  `json:"categoryId"`
}

func (s *MenuService) CreateItem(userID, restID uint, req *MenuItemReq) (*entity.MenuItem, error) {
	if err := s.requireOwner(userID, restID); err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		cat, err := s.Repo.GetCategory(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat.RestaurantID != restID {
			return nil, ErrForbidden
		}
	}
	item := &entity.MenuItem{
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		Price:        req.Price,
		Ingredients:  req.Ingredients,
		ImageLink:    req.ImageLink,
		CategoryID:   req.CategoryID,
		RestaurantID: restID,
	}
	if err := s.Repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) ListItems(restID uint, categoryID *uint) ([]entity.MenuItem, error) {
	return s.Repo.ListItems(restID, categoryID)
}

func (s *MenuService) GetItem(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.GetItem(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	return item, err
}

func (s *MenuService) UpdateItem(userID, restID, itemID uint, req *MenuItemReq) (*entity.MenuItem, error) {
	if err := s.requireOwner(userID, restID); err != nil {
		return nil, err
	}
	item, err := s.Repo.GetItem(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	if item.RestaurantID != restID {
		return nil, ErrForbidden
	}

	item.Name = strings.TrimSpace(req.Name)
	item.Description = req.Description
	item.Price = req.Price
	item.Ingredients = req.Ingredients
	item.ImageLink = req.ImageLink
	item.CategoryID = req.CategoryID
	if err := s.Repo.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) DeleteItem(userID, restID, itemID uint) error {
	if err := s.requireOwner(userID, restID); err != nil {
		return err
	}
	item, err := s.Repo.GetItem(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMenuItemNotFound
	}
	if err != nil {
		return err
	}
	if item.RestaurantID != restID {
		return ErrForbidden
	}
	return s.Repo.DeleteItem(itemID)
}

func (s *MenuService) requireOwner(userID, restID uint) error {
	ok, err := s.RestRepo.IsOwnedBy(restID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}
