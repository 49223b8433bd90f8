package repositories

import (
	"agrodirect/models"
	"agrodirect/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	repo, err := NewUserRepository("harvest")
	require.NoError(t, err)

	users := repo.All()
	require.Len(t, users, 3)

	farmer, err := repo.FindByPhone("+234 800-000-0000")
	require.NoError(t, err)
	assert.Equal(t, "u1", farmer.ID)
	assert.Equal(t, models.RoleFarmer, farmer.Role)
	assert.Equal(t, "Lagos", farmer.Location)

	ok, err := utils.VerifyPassword(farmer.PasswordHash, "harvest")
	require.NoError(t, err)
	assert.True(t, ok)

	admin, err := repo.FindByID("u3")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	_, err = repo.FindByID("u9")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByPhone("+2340000000000")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_EmptyPassword(t *testing.T) {
	_, err := NewUserRepository("")
	assert.ErrorIs(t, err, utils.ErrEmptyPassword)
}

func TestOrderRepository(t *testing.T) {
	repo := NewOrderRepository()
	repo.Save(models.Order{ID: "o1", BuyerID: "u2", FarmerIDs: []string{"f1", "f3"}})
	repo.Save(models.Order{ID: "o2", BuyerID: "u2", FarmerIDs: []string{"f2"}})
	repo.Save(models.Order{ID: "o3", FarmerIDs: []string{"f1"}})

	order, err := repo.FindByID("o2")
	require.NoError(t, err)
	assert.Equal(t, []string{"f2"}, order.FarmerIDs)

	_, err = repo.FindByID("o9")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	assert.Len(t, repo.FindByBuyer("u2"), 2)
	assert.Len(t, repo.FindByFarmer("f1"), 2)
	assert.Empty(t, repo.FindByFarmer("f9"))
	assert.Len(t, repo.All(), 3)
}

func TestListingRepository(t *testing.T) {
	repo := NewListingRepository()
	draft := models.ListingDraft{Name: "Plantain", Category: models.CategoryFruits, Price: 4000, Unit: "Bunch", Quantity: 30}

	listing := repo.Create("u1", "Lagos", draft)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "active", listing.Status)
	assert.Equal(t, "Lagos", listing.Location)

	repo.Create("u1", "Lagos", draft)
	assert.Len(t, repo.FindByFarmer("u1"), 2)
	assert.Empty(t, repo.FindByFarmer("u2"))
}
