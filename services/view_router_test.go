package services

import (
	"agrodirect/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewRouter_InitialState(t *testing.T) {
	r := NewViewRouter()

	state := r.State()
	assert.Equal(t, models.ViewMarketplace, state.Screen)
	assert.Nil(t, state.SelectedProduct)
	assert.False(t, state.ShowSuccess)
	assert.Equal(t, models.ViewMarketplace, r.Screen())
}

func TestViewRouter_SelectThenNavigate(t *testing.T) {
	r := NewViewRouter()
	p := product("3", 3200)

	require.NoError(t, r.SelectProduct(p))
	assert.Equal(t, models.ViewProductDetail, r.Screen())
	require.NotNil(t, r.State().SelectedProduct)
	assert.Equal(t, "3", r.State().SelectedProduct.ID)

	require.NoError(t, r.Navigate(models.ViewMarketplace))
	state := r.State()
	assert.Equal(t, models.ViewMarketplace, state.Screen)
	require.NotNil(t, state.SelectedProduct, "selection is kept after navigating away")
	assert.Equal(t, "3", state.SelectedProduct.ID)
	assert.False(t, state.ShowSuccess)
}

func TestViewRouter_NavigateAnyScreen(t *testing.T) {
	for _, from := range models.Views {
		for _, to := range models.Views {
			r := NewViewRouter()
			require.NoError(t, r.Navigate(from))
			require.NoError(t, r.Navigate(to), "%s -> %s", from, to)
			assert.Equal(t, to, r.State().Screen)
		}
	}
}

func TestViewRouter_NavigateUnknownView(t *testing.T) {
	r := NewViewRouter()
	epoch := r.Epoch()

	err := r.Navigate(models.View("settings"))
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.Equal(t, models.ViewMarketplace, r.Screen())
	assert.Equal(t, epoch, r.Epoch())
}

func TestViewRouter_SelectProductSources(t *testing.T) {
	allowed := map[models.View]bool{
		models.ViewHome:          true,
		models.ViewMarketplace:   true,
		models.ViewProductDetail: true,
	}

	for _, from := range models.Views {
		t.Run(string(from), func(t *testing.T) {
			r := NewViewRouter()
			require.NoError(t, r.Navigate(from))

			err := r.SelectProduct(product("1", 1500))
			if allowed[from] {
				require.NoError(t, err)
				assert.Equal(t, models.ViewProductDetail, r.State().Screen)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, from, r.State().Screen)
			}
		})
	}
}

func TestViewRouter_CompleteCheckout(t *testing.T) {
	r := NewViewRouter()

	assert.ErrorIs(t, r.CompleteCheckout(), ErrInvalidTransition)

	require.NoError(t, r.Navigate(models.ViewCheckout))
	require.NoError(t, r.CompleteCheckout())
	assert.Equal(t, models.ViewHome, r.Screen())
	assert.True(t, r.State().ShowSuccess)

	require.NoError(t, r.Navigate(models.ViewMarketplace))
	assert.False(t, r.State().ShowSuccess)
}

func TestViewRouter_ProductDetailWithoutSelection(t *testing.T) {
	r := NewViewRouter()
	require.NoError(t, r.Navigate(models.ViewProductDetail))

	assert.Equal(t, models.ViewProductDetail, r.State().Screen)
	assert.Equal(t, models.ViewMarketplace, r.Screen())
}

func TestViewRouter_EpochBumpsOnEveryTransition(t *testing.T) {
	r := NewViewRouter()
	e0 := r.Epoch()

	require.NoError(t, r.Navigate(models.ViewMarketplace))
	e1 := r.Epoch()
	require.NoError(t, r.SelectProduct(product("1", 1)))
	e2 := r.Epoch()

	assert.Greater(t, e1, e0)
	assert.Greater(t, e2, e1)
}

func TestViewRouter_StateIsACopy(t *testing.T) {
	r := NewViewRouter()
	require.NoError(t, r.SelectProduct(product("1", 1500)))

	state := r.State()
	state.SelectedProduct.Name = "changed"
	assert.Equal(t, "Product 1", r.State().SelectedProduct.Name)
}

func TestNavOptions(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want []models.View
	}{
		{"guest", nil, []models.View{models.ViewHome, models.ViewMarketplace, models.ViewCheckout}},
		{"buyer", buyerUser, []models.View{models.ViewHome, models.ViewMarketplace, models.ViewCheckout}},
		{"farmer", farmerUser, []models.View{models.ViewHome, models.ViewMarketplace, models.ViewFarmerDashboard, models.ViewCheckout}},
		{"admin", adminUser, []models.View{models.ViewHome, models.ViewMarketplace, models.ViewAdmin, models.ViewCheckout}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NavOptions(tt.user))
		})
	}

	assert.False(t, CanNavigate(buyerUser, models.ViewFarmerDashboard))
	assert.True(t, CanNavigate(farmerUser, models.ViewFarmerDashboard))
	assert.False(t, CanNavigate(farmerUser, models.ViewAdmin))
}
