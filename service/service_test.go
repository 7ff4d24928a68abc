package service

import (
	"path/filepath"
	"testing"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentMethod{},
	))
	return db
}

type fixtures struct {
	admin         models.User
	managerIndia  models.User
	memberIndia   models.User
	memberAmerica models.User

	tajMahal models.Restaurant
	liberty  models.Restaurant

	butterChicken models.MenuItem // india, 300
	naan          models.MenuItem // india, 60
	cheeseburger  models.MenuItem // america, 450
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()
	f := fixtures{
		admin:         models.User{Email: "admin@test.local", PasswordHash: "x", Name: "Admin", Role: models.RoleAdmin, Region: models.RegionGlobal},
		managerIndia:  models.User{Email: "manager-in@test.local", PasswordHash: "x", Name: "Manager IN", Role: models.RoleManager, Region: models.RegionIndia},
		memberIndia:   models.User{Email: "member-in@test.local", PasswordHash: "x", Name: "Member IN", Role: models.RoleMember, Region: models.RegionIndia},
		memberAmerica: models.User{Email: "member-us@test.local", PasswordHash: "x", Name: "Member US", Role: models.RoleMember, Region: models.RegionAmerica},
	}
	require.NoError(t, db.Create(&f.admin).Error)
	require.NoError(t, db.Create(&f.managerIndia).Error)
	require.NoError(t, db.Create(&f.memberIndia).Error)
	require.NoError(t, db.Create(&f.memberAmerica).Error)

	f.tajMahal = models.Restaurant{Name: "Taj Mahal Kitchen", Region: models.RegionIndia}
	f.liberty = models.Restaurant{Name: "Liberty Diner", Region: models.RegionAmerica}
	require.NoError(t, db.Create(&f.tajMahal).Error)
	require.NoError(t, db.Create(&f.liberty).Error)

	f.butterChicken = models.MenuItem{RestaurantID: f.tajMahal.ID, Name: "Butter Chicken", Price: 300}
	f.naan = models.MenuItem{RestaurantID: f.tajMahal.ID, Name: "Garlic Naan", Price: 60}
	f.cheeseburger = models.MenuItem{RestaurantID: f.liberty.ID, Name: "Cheeseburger", Price: 450}
	require.NoError(t, db.Create(&f.butterChicken).Error)
	require.NoError(t, db.Create(&f.naan).Error)
	require.NoError(t, db.Create(&f.cheeseburger).Error)

	return f
}
