package config

import (
	"food-ordering-api/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDB loads a demo dataset: users across every role and region, plus
// a few restaurants with menus per region. It is idempotent — a database
// that already has users is left untouched.
func SeedDB(db *gorm.DB, seedPassword string) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pwd := string(hash)

	users := []models.User{
		{Email: "nick@example.com", PasswordHash: pwd, Name: "Nick Fury", Role: models.RoleAdmin, Region: models.RegionGlobal},
		{Email: "marvel@example.com", PasswordHash: pwd, Name: "Captain Marvel", Role: models.RoleManager, Region: models.RegionIndia},
		{Email: "america@example.com", PasswordHash: pwd, Name: "Captain America", Role: models.RoleManager, Region: models.RegionAmerica},
		{Email: "thanos@example.com", PasswordHash: pwd, Name: "Thanos", Role: models.RoleMember, Region: models.RegionIndia},
		{Email: "thor@example.com", PasswordHash: pwd, Name: "Thor", Role: models.RoleMember, Region: models.RegionIndia},
		{Email: "travis@example.com", PasswordHash: pwd, Name: "Travis", Role: models.RoleMember, Region: models.RegionAmerica},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	restaurants := []models.Restaurant{
		{
			Name:        "Taj Mahal Kitchen",
			Description: "Authentic Indian cuisine with traditional recipes",
			Region:      models.RegionIndia,
			MenuItems: []models.MenuItem{
				{Name: "Butter Chicken", Description: "Creamy tomato gravy with tandoori chicken", Price: 320},
				{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese skewers", Price: 280},
				{Name: "Garlic Naan", Description: "Leavened flatbread with garlic butter", Price: 60},
			},
		},
		{
			Name:        "Spice Garden",
			Description: "North Indian delicacies and street food",
			Region:      models.RegionIndia,
			MenuItems: []models.MenuItem{
				{Name: "Chole Bhature", Description: "Spiced chickpeas with fried bread", Price: 180},
				{Name: "Masala Dosa", Description: "Crisp rice crepe with potato filling", Price: 150},
			},
		},
		{
			Name:        "Liberty Diner",
			Description: "Classic American comfort food",
			Region:      models.RegionAmerica,
			MenuItems: []models.MenuItem{
				{Name: "Cheeseburger", Description: "Double patty with cheddar and pickles", Price: 450},
				{Name: "Buffalo Wings", Description: "Crispy wings tossed in hot sauce", Price: 380},
				{Name: "Milkshake", Description: "Vanilla bean shake with whipped cream", Price: 200},
			},
		},
		{
			Name:        "Golden Gate Grill",
			Description: "West coast grill and seasonal salads",
			Region:      models.RegionAmerica,
			MenuItems: []models.MenuItem{
				{Name: "Grilled Salmon", Description: "Cedar plank salmon with lemon butter", Price: 650},
				{Name: "Cobb Salad", Description: "Avocado, bacon, blue cheese and egg", Price: 420},
			},
		},
	}
	return db.Create(&restaurants).Error
}
