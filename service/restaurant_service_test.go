package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRestaurantsIsRegionScoped(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	restaurants := NewRestaurantService(db)

	india, err := restaurants.List(f.managerIndia)
	require.NoError(t, err)
	require.Len(t, india, 1)
	assert.Equal(t, f.tajMahal.ID, india[0].ID)

	america, err := restaurants.List(f.memberAmerica)
	require.NoError(t, err)
	require.Len(t, america, 1)
	assert.Equal(t, f.liberty.ID, america[0].ID)

	all, err := restaurants.List(f.admin)
	require.NoError(t, err)
	assert.Len(t, all, 2, "admin sees every region")
}

func TestGetRestaurantScopesSilently(t *testing.T) {
	db := newTestDB(t)
	f := seedFixtures(t, db)
	restaurants := NewRestaurantService(db)

	got, err := restaurants.Get(f.managerIndia, f.tajMahal.ID)
	require.NoError(t, err)
	assert.Equal(t, f.tajMahal.ID, got.ID)
	assert.Len(t, got.MenuItems, 2)

	// Out of region reads as absent, not forbidden.
	_, err = restaurants.Get(f.managerIndia, f.liberty.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = restaurants.Get(f.admin, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	adminGet, err := restaurants.Get(f.admin, f.liberty.ID)
	require.NoError(t, err)
	assert.Equal(t, f.liberty.ID, adminGet.ID)
}
