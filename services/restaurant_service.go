package services

import (
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"foodmarket/entity"
	"foodmarket/repository"
)

type RestaurantService struct {
	Repo    *repository.RestaurantRepository
	GeoRepo *repository.GeoRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, geoRepo *repository.GeoRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, GeoRepo: geoRepo}
}

type HoursIn struct {
	Weekday  int    `json:"weekday" binding:"required,min=1,max=7"`
	OpensAt  string `json:"opensAt" binding:"required"`
	ClosesAt string `json:"closesAt" binding:"required"`
}

type CreateRestaurantReq struct {
	Name        string    `json:"name" binding:"required"`
	Address     string    `json:"address"`
	Slug        string    `json:"slug"`
	PhoneNumber string    `json:"phoneNumber" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Description string    `json:"description"`
	ImageLink   string    `json:"imageLink"`
	ZipCode     *string   `json:"zipCode"`
	CuisineIDs  []uint    `json:"cuisineIds"`
	Hours       []HoursIn `json:"hours"`
}

// Create registers a restaurant owned by the calling user. The slug is
// derived from the name unless one is given; a taken slug, phone or
// email comes back as a constraint violation.
func (s *RestaurantService) Create(userID uint, req *CreateRestaurantReq) (*entity.Restaurant, error) {
	sl := strings.TrimSpace(req.Slug)
	if sl == "" {
		sl = slug.Make(req.Name)
	} else if !slug.IsSlug(sl) {
		sl = slug.Make(sl)
	}

	if req.ZipCode != nil {
		ok, err := s.GeoRepo.ZipCodeExists(*req.ZipCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrZipCodeNotFound
		}
	}

	rest := &entity.Restaurant{
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Slug:        sl,
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Description: req.Description,
		ImageLink:   req.ImageLink,
		ZipCode:     req.ZipCode,
		UserID:      userID,
	}
	if err := s.Repo.Create(rest); err != nil {
		return nil, err
	}

	if len(req.CuisineIDs) > 0 {
		if err := s.setCuisines(rest, req.CuisineIDs); err != nil {
			return nil, err
		}
	}
	if len(req.Hours) > 0 {
		if err := s.setHours(rest, req.Hours); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.FindAll()
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRestaurantNotFound
	}
	return rest, err
}

func (s *RestaurantService) GetBySlug(sl string) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindBySlug(sl)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRestaurantNotFound
	}
	return rest, err
}

type UpdateRestaurantReq struct {
	Name        *string   `json:"name"`
	Address     *string   `json:"address"`
	PhoneNumber *string   `json:"phoneNumber"`
	Email       *string   `json:"email"`
	Description *string   `json:"description"`
	ImageLink   *string   `json:"imageLink"`
	ZipCode     *string   `json:"zipCode"`
	CuisineIDs  []uint    `json:"cuisineIds"`
	Hours       []HoursIn `json:"hours"`
}

func (s *RestaurantService) Update(userID, restID uint, req *UpdateRestaurantReq) (*entity.Restaurant, error) {
	rest, err := s.ownedBy(userID, restID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		rest.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		rest.Address = *req.Address
	}
	if req.PhoneNumber != nil {
		rest.PhoneNumber = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Email != nil {
		rest.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Description != nil {
		rest.Description = *req.Description
	}
	if req.ImageLink != nil {
		rest.ImageLink = *req.ImageLink
	}
	if req.ZipCode != nil {
		ok, err := s.GeoRepo.ZipCodeExists(*req.ZipCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrZipCodeNotFound
		}
		rest.ZipCode = req.ZipCode
	}

	if err := s.Repo.Update(rest); err != nil {
		return nil, err
	}

	if req.CuisineIDs != nil {
		if err := s.setCuisines(rest, req.CuisineIDs); err != nil {
			return nil, err
		}
	}
	if req.Hours != nil {
		if err := s.setHours(rest, req.Hours); err != nil {
			return nil, err
		}
	}
	return rest, nil
}

// Delete removes the restaurant along with its categories and items.
func (s *RestaurantService) Delete(userID, restID uint) error {
	if _, err := s.ownedBy(userID, restID); err != nil {
		return err
	}
	return s.Repo.Delete(restID)
}

func (s *RestaurantService) ownedBy(userID, restID uint) (*entity.Restaurant, error) {
	rest, err := s.Repo.FindByID(restID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	if rest.UserID != userID {
		return nil, ErrForbidden
	}
	return rest, nil
}

func (s *RestaurantService) setCuisines(rest *entity.Restaurant, ids []uint) error {
	cuisines, err := s.Repo.FindCuisinesByIDs(ids)
	if err != nil {
		return err
	}
	if len(cuisines) != len(ids) {
		return gorm.ErrRecordNotFound
	}
	return s.Repo.ReplaceCuisines(rest, cuisines)
}

func (s *RestaurantService) setHours(rest *entity.Restaurant, in []HoursIn) error {
	hours := make([]entity.OpeningHours, 0, len(in))
	for _, h := range in {
		slot := entity.OpeningHours{Weekday: h.Weekday, OpensAt: h.OpensAt, ClosesAt: h.ClosesAt}
		if err := s.Repo.FirstOrCreateHours(&slot); err != nil {
			return err
		}
		hours = append(hours, slot)
	}
	return s.Repo.ReplaceHours(rest, hours)
}
