package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foodmarket/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the database named by the config. TranslateError
// turns driver duplicate-key failures into gorm.ErrDuplicatedKey so the
// services can map them to constraint violations.
func ConnectionDB(cfg *Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return Migrate(db)
}

// Migrate creates the full schema on the given connection.
func Migrate(g *gorm.DB) error {
	return g.AutoMigrate(
		&entity.State{}, &entity.City{}, &entity.ZipCode{},
		&entity.CuisineType{}, &entity.OpeningHours{},
		&entity.User{}, &entity.Customer{}, &entity.Driver{},
		&entity.Restaurant{}, &entity.MenuCategory{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Delivery{}, &entity.Payment{}, &entity.PaymentInformation{},
		&entity.Review{},
		&entity.Cart{}, &entity.CartEntry{},
	)
}
