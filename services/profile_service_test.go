package services

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"foodmarket/entity"
	"foodmarket/repository"
)

func newProfileService(db *gorm.DB) *ProfileService {
	return NewProfileService(
		repository.NewCustomerRepository(db),
		repository.NewDriverRepository(db),
		repository.NewUserRepository(db),
		repository.NewGeoRepository(db),
		repository.NewPaymentRepository(db),
	)
}

func TestAddCardStoresExpiry(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	card, err := newProfileService(db).AddCard(user.ID, &CardReq{
		NameOnCard:   "Pat Doe",
		CardNumber:   "4111111111111111",
		SecurityCode: "123",
		ExpiresAt:    "2029-12-01",
	})
	if err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	if card.ExpiresAt.Year() != 2029 || card.ExpiresAt.Month() != 12 {
		t.Errorf("expiry stored as %v", card.ExpiresAt)
	}
}

func TestAddCardRejectsBadExpiry(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "pat@example.com", entity.RoleCustomer)
	seedCustomer(t, db, user)

	svc := newProfileService(db)
	for _, bad := range []string{"12/29", "2029-13-01", "next year"} {
		_, err := svc.AddCard(user.ID, &CardReq{
			NameOnCard:   "Pat Doe",
			CardNumber:   "4111111111111111",
			SecurityCode: "123",
			ExpiresAt:    bad,
		})
		if !errors.Is(err, ErrInvalidCardExpiry) {
			t.Errorf("expiry %q: want ErrInvalidCardExpiry, got %v", bad, err)
		}
	}
}
