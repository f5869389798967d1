package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"foodmarket/entity"
)

// SeedAdmin creates the first admin account from the environment.
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedLookups loads the static reference data: a starter geography tree
// and the common cuisine tags.
func SeedLookups() error {
	db := DB()

	states := []entity.State{
		{Code: "CA", Name: "California"},
		{Code: "NY", Name: "New York"},
		{Code: "TX", Name: "Texas"},
	}
	for _, s := range states {
		if err := db.FirstOrCreate(&entity.State{}, s).Error; err != nil {
			return err
		}
	}

	cities := []entity.City{
		{Name: "Los Angeles", StateCode: "CA"},
		{Name: "Huntington Beach", StateCode: "CA"},
		{Name: "New York", Neighborhood: "Brooklyn", StateCode: "NY"},
		{Name: "Austin", StateCode: "TX"},
	}
	for _, c := range cities {
		var row entity.City
		if err := db.Where("name = ? AND state_code = ?", c.Name, c.StateCode).
			FirstOrCreate(&row, c).Error; err != nil {
			return err
		}
	}

	zips := map[string]string{
		"90001": "Los Angeles",
		"92646": "Huntington Beach",
		"11201": "New York",
		"78701": "Austin",
	}
	for code, cityName := range zips {
		var city entity.City
		if err := db.Where("name = ?", cityName).First(&city).Error; err != nil {
			return err
		}
		if err := db.FirstOrCreate(&entity.ZipCode{}, entity.ZipCode{Code: code, CityID: city.ID}).Error; err != nil {
			return err
		}
	}

	cuisines := []string{"Japanese", "Italian", "Mexican", "Fast Food", "Thai", "Indian"}
	for _, name := range cuisines {
		if err := db.FirstOrCreate(&entity.CuisineType{}, entity.CuisineType{Name: name}).Error; err != nil {
			return err
		}
	}

	return nil
}
