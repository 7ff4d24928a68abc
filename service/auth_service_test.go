package service

import (
	"testing"

	"food-ordering-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticate(t *testing.T) {
	db := newTestDB(t)
	auth := NewAuthService(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Email: "nick@test.local", PasswordHash: string(hash),
		Name: "Nick", Role: models.RoleAdmin, Region: models.RegionGlobal,
	}
	require.NoError(t, db.Create(&user).Error)

	got, err := auth.Authenticate("nick@test.local", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, models.RoleAdmin, got.Role)

	_, err = auth.Authenticate("nick@test.local", "wrong")
	assert.ErrorIs(t, err, ErrNotFound)

	// Unknown email fails identically to a bad password.
	_, err = auth.Authenticate("ghost@test.local", "s3cret")
	assert.ErrorIs(t, err, ErrNotFound)
}
