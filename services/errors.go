package services

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors the controllers map to HTTP statuses.
var (
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrZipCodeNotFound    = errors.New("zip code not found")

	ErrDuplicate            = errors.New("already exists")
	ErrCartOtherRestaurant  = errors.New("cart holds items from another restaurant")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidCardExpiry    = errors.New("card expiry must be YYYY-MM-DD")
	ErrNotDelivered         = errors.New("order has not been delivered")
	ErrDeliveryAlreadyDone  = errors.New("delivery already completed")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)

// IsConstraintViolation reports whether err is a uniqueness or
// foreign-key violation surfaced by the database.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, ErrDuplicate)
}

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrMenuItemNotFound) ||
		errors.Is(err, ErrRestaurantNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrDeliveryNotFound) ||
		errors.Is(err, ErrProfileNotFound) ||
		errors.Is(err, ErrZipCodeNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}
