package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentMethodCOD      = "COD"
	PaymentMethodCard     = "CARD"
	PaymentMethodPayPal   = "PAYPAL"
	PaymentMethodGiftCard = "GIFTCARD"
)

// Payment amounts are stored in cents. Reference is a server-generated
// opaque id handed to the payment collaborator.
type Payment struct {
	gorm.Model
	Tips           int64     `json:"tips"`
	DeliveryFee    int64     `json:"deliveryFee"`
	SalesTax       int64     `json:"salesTax"`
	TotalPrice     int64     `json:"totalPrice"`
	Amount         int64     `json:"amount"`
	Method         string    `json:"method" gorm:"size:20;not null;default:CARD"`
	PromoCode      *string   `json:"promoCode,omitempty" gorm:"size:5;uniqueIndex"`
	Reference      string    `json:"reference" gorm:"size:36"`
	BillingAddress string    `json:"billingAddress" gorm:"size:256"`
	PaidAt         time.Time `json:"paidAt"`

	OrderID uint  `json:"orderId" gorm:"uniqueIndex;not null"`
	Order   Order `json:"-"`
}
