package policy

import (
	"testing"

	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
)

func TestAllows(t *testing.T) {
	tests := []struct {
		name   string
		role   models.UserRole
		action Action
		want   bool
	}{
		{"admin can checkout", models.RoleAdmin, ActionCheckout, true},
		{"manager can checkout", models.RoleManager, ActionCheckout, true},
		{"member cannot checkout", models.RoleMember, ActionCheckout, false},
		{"admin can cancel", models.RoleAdmin, ActionCancelOrder, true},
		{"manager can cancel", models.RoleManager, ActionCancelOrder, true},
		{"member cannot cancel", models.RoleMember, ActionCancelOrder, false},
		{"only admin manages payments", models.RoleManager, ActionManagePayments, false},
		{"admin manages payments", models.RoleAdmin, ActionManagePayments, true},
		{"member cannot manage payments", models.RoleMember, ActionManagePayments, false},
		{"only admin lists all orders", models.RoleManager, ActionListAllOrders, false},
		{"admin lists all orders", models.RoleAdmin, ActionListAllOrders, true},
		{"ungated action open to member", models.RoleMember, Action("view_cart"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Allows(tt.role, tt.action))
		})
	}
}

func TestRolesFor(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.UserRole{models.RoleAdmin, models.RoleManager},
		RolesFor(ActionCheckout))
	assert.Nil(t, RolesFor(Action("view_cart")))
}

func TestRegionScope(t *testing.T) {
	admin := models.User{Role: models.RoleAdmin, Region: models.RegionGlobal}
	_, ok := RegionScope(admin)
	assert.False(t, ok, "admin sees all regions")

	managerIndia := models.User{Role: models.RoleManager, Region: models.RegionIndia}
	region, ok := RegionScope(managerIndia)
	assert.True(t, ok)
	assert.Equal(t, models.RegionIndia, region)

	memberAmerica := models.User{Role: models.RoleMember, Region: models.RegionAmerica}
	region, ok = RegionScope(memberAmerica)
	assert.True(t, ok)
	assert.Equal(t, models.RegionAmerica, region)

	globalManager := models.User{Role: models.RoleManager, Region: models.RegionGlobal}
	_, ok = RegionScope(globalManager)
	assert.False(t, ok, "global-region users are unscoped")
}
