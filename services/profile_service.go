package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"foodmarket/entity"
	"foodmarket/repository"
)

// ProfileService manages the Customer and Driver rows bound one-to-one
// to authenticated accounts, and the customer's cards on file.
type ProfileService struct {
	CustomerRepo *repository.CustomerRepository
	DriverRepo   *repository.DriverRepository
	UserRepo     *repository.UserRepository
	GeoRepo      *repository.GeoRepository
	PaymentRepo  *repository.PaymentRepository
}

func NewProfileService(
	customerRepo *repository.CustomerRepository,
	driverRepo *repository.DriverRepository,
	userRepo *repository.UserRepository,
	geoRepo *repository.GeoRepository,
	paymentRepo *repository.PaymentRepository,
) *ProfileService {
	return &ProfileService{
		CustomerRepo: customerRepo, DriverRepo: driverRepo,
		UserRepo: userRepo, GeoRepo: geoRepo, PaymentRepo: paymentRepo,
	}
}

type CustomerReq struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	PhoneNumber    string  `json:"phoneNumber"`
	Address        string  `json:"address"`
	BillingAddress string  `json:"billingAddress"`
	ZipCode        *string `json:"zipCode"`
}

// CreateCustomer attaches the one customer profile to the account; a
// second profile for the same account is a constraint violation.
func (s *ProfileService) CreateCustomer(userID uint, req *CustomerReq) (*entity.Customer, error) {
	if err := s.checkZip(req.ZipCode); err != nil {
		return nil, err
	}
	c := &entity.Customer{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		BillingAddress: req.BillingAddress,
		ZipCode:        req.ZipCode,
		UserID:         userID,
	}
	if err := s.CustomerRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ProfileService) GetCustomer(userID uint) (*entity.Customer, error) {
	c, err := s.CustomerRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	return c, err
}

func (s *ProfileService) UpdateCustomer(userID uint, req *CustomerReq) (*entity.Customer, error) {
	c, err := s.GetCustomer(userID)
	if err != nil {
		return nil, err
	}
	if err := s.checkZip(req.ZipCode); err != nil {
		return nil, err
	}
	c.FirstName = strings.TrimSpace(req.FirstName)
	c.LastName = strings.TrimSpace(req.LastName)
	c.Email = strings.ToLower(strings.TrimSpace(req.Email))
	c.PhoneNumber = req.PhoneNumber
	c.Address = req.Address
	c.BillingAddress = req.BillingAddress
	c.ZipCode = req.ZipCode
	if err := s.CustomerRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

type DriverReq struct {
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PhoneNumber string  `json:"phoneNumber"`
	Address     string  `json:"address"`
	ZipCode     *string `json:"zipCode"`
}

// CreateDriver attaches the one driver profile to the account and
// promotes the account to the driver role.
func (s *ProfileService) CreateDriver(userID uint, req *DriverReq) (*entity.Driver, error) {
	if err := s.checkZip(req.ZipCode); err != nil {
		return nil, err
	}
	d := &entity.Driver{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		ZipCode:     req.ZipCode,
		UserID:      userID,
	}
	if err := s.DriverRepo.Create(d); err != nil {
		return nil, err
	}
	if err := s.UserRepo.UpdateRole(userID, entity.RoleDriver); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *ProfileService) GetDriver(userID uint) (*entity.Driver, error) {
	d, err := s.DriverRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	return d, err
}

// ---------------- Cards on file ----------------

type CardReq struct {
	NameOnCard   string `json:"nameOnCard" binding:"required"`
	CardNumber   string `json:"cardNumber" binding:"required"`
	SecurityCode string `json:"securityCode" binding:"required"`
	ExpiresAt    string `json:"expiresAt" binding:"required"` // 2006-01-02
}

func (s *ProfileService) AddCard(userID uint, req *CardReq) (*entity.PaymentInformation, error) {
	customer, err := s.GetCustomer(userID)
	if err != nil {
		return nil, err
	}
	expires, err := time.Parse("2006-01-02", req.ExpiresAt)
	if err != nil {
		return nil, ErrInvalidCardExpiry
	}
	card := &entity.PaymentInformation{
		NameOnCard:   strings.TrimSpace(req.NameOnCard),
		CardNumber:   strings.TrimSpace(req.CardNumber),
		SecurityCode: req.SecurityCode,
		ExpiresAt:    expires,
		CustomerID:   customer.ID,
	}
	if err := s.PaymentRepo.CreateCard(card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *ProfileService) ListCards(userID uint) ([]entity.PaymentInformation, error) {
	customer, err := s.GetCustomer(userID)
	if err != nil {
		return nil, err
	}
	return s.PaymentRepo.ListCards(customer.ID)
}

func (s *ProfileService) RemoveCard(userID, cardID uint) error {
	customer, err := s.GetCustomer(userID)
	if err != nil {
		return err
	}
	ok, err := s.PaymentRepo.DeleteCard(customer.ID, cardID)
	if err != nil {
		return err
	}
	if !ok {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *ProfileService) checkZip(code *string) error {
	if code == nil {
		return nil
	}
	ok, err := s.GeoRepo.ZipCodeExists(*code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrZipCodeNotFound
	}
	return nil
}
