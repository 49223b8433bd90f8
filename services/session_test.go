package services

import (
	"agrodirect/models"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAddress = models.DeliveryAddress{FullName: "Chidi Okafor", Phone: "+2348000000001", Street: "12 Ogui Road, Enugu"}

func TestSession_CheckoutCompletes(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, buyerUser)

	_, err := s.AddToCart("1")
	require.NoError(t, err)
	_, err = s.AddToCart("1")
	require.NoError(t, err)
	summary, err := s.AddToCart("3")
	require.NoError(t, err)
	assert.Equal(t, 3, summary.ItemCount)
	assert.Equal(t, int64(8700), summary.Totals.Total)

	_, err = s.Navigate(models.ViewCheckout)
	require.NoError(t, err)

	status, err := s.SubmitPayment(testAddress, "chidi@example.com")
	require.NoError(t, err)
	assert.True(t, status.Processing)

	_, err = s.SubmitPayment(testAddress, "chidi@example.com")
	assert.ErrorIs(t, err, ErrPaymentInProgress)
	_, err = s.AddToCart("2")
	assert.ErrorIs(t, err, ErrPaymentInProgress)
	_, err = s.UpdateQuantity("1", 5)
	assert.ErrorIs(t, err, ErrPaymentInProgress)

	close(env.gateway.release)
	s.Wait()

	snap := s.Snapshot()
	assert.Equal(t, models.ViewHome, snap.Screen)
	assert.True(t, snap.View.ShowSuccess)
	assert.Zero(t, snap.CartCount)
	assert.False(t, snap.Checkout.Processing)
	assert.Empty(t, snap.Checkout.LastError)
	assert.NotEmpty(t, snap.LastOrderID)
	assert.Equal(t, models.Totals{}, s.CartSummary().Totals)

	orders := s.Orders()
	require.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, snap.LastOrderID, order.ID)
	assert.Equal(t, "u2", order.BuyerID)
	assert.Equal(t, []string{"f1", "f3"}, order.FarmerIDs)
	assert.Equal(t, int64(6200), order.Subtotal)
	assert.Equal(t, int64(2500), order.DeliveryFee)
	assert.Equal(t, int64(8700), order.TotalAmount)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "REF-"+order.ID, order.PaymentRef)
	assert.Equal(t, testAddress, order.Address)
	assert.Equal(t, int32(1), env.gateway.calls.Load())
	assert.Equal(t, 1, env.notifier.count())

	farmerOrders := env.deps.Orders.FindByFarmer("f3")
	require.Len(t, farmerOrders, 1)
	assert.Equal(t, order.ID, farmerOrders[0].ID)

	_, err = s.Navigate(models.ViewMarketplace)
	require.NoError(t, err)
	assert.False(t, s.Snapshot().View.ShowSuccess)
}

func TestSession_SubmitPaymentPreconditions(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, nil)

	_, err := s.Navigate(models.ViewCheckout)
	require.NoError(t, err)
	_, err = s.SubmitPayment(testAddress, "")
	assert.ErrorIs(t, err, ErrCartEmpty)

	_, err = s.Navigate(models.ViewMarketplace)
	require.NoError(t, err)
	_, err = s.AddToCart("2")
	require.NoError(t, err)
	_, err = s.SubmitPayment(testAddress, "")
	assert.ErrorIs(t, err, ErrNotOnCheckout)

	assert.Zero(t, env.gateway.calls.Load())
}

func TestSession_NavigatingAwayAbandonsPayment(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, buyerUser)

	_, err := s.BuyNow("4")
	require.NoError(t, err)
	_, err = s.SubmitPayment(testAddress, "")
	require.NoError(t, err)

	snap, err := s.Navigate(models.ViewMarketplace)
	require.NoError(t, err)
	assert.False(t, snap.Checkout.Processing)

	s.Wait()

	snap = s.Snapshot()
	assert.Equal(t, models.ViewMarketplace, snap.Screen)
	assert.False(t, snap.View.ShowSuccess)
	assert.Equal(t, 1, snap.CartCount)
	assert.Empty(t, s.Orders())
	assert.Zero(t, env.notifier.count())

	// the abandoned payment no longer blocks a fresh attempt
	_, err = s.Navigate(models.ViewCheckout)
	require.NoError(t, err)
	_, err = s.SubmitPayment(testAddress, "")
	require.NoError(t, err)
	close(env.gateway.release)
	s.Wait()

	assert.Len(t, s.Orders(), 1)
	assert.Equal(t, models.ViewHome, s.Snapshot().Screen)
}

func TestSession_PaymentFailureKeepsCart(t *testing.T) {
	env := newTestEnv(t, nil)
	env.gateway.err = errors.New("card declined")
	s := env.session(t, buyerUser)

	_, err := s.BuyNow("2")
	require.NoError(t, err)
	_, err = s.SubmitPayment(testAddress, "")
	require.NoError(t, err)

	close(env.gateway.release)
	s.Wait()

	snap := s.Snapshot()
	assert.Equal(t, models.ViewCheckout, snap.Screen)
	assert.False(t, snap.Checkout.Processing)
	assert.Equal(t, "card declined", snap.Checkout.LastError)
	assert.Equal(t, 1, snap.CartCount)
	assert.Empty(t, s.Orders())

	_, err = s.AddToCart("2")
	assert.NoError(t, err, "cart is editable again after a failure")
}

func TestSession_PaymentTimeout(t *testing.T) {
	env := newTestEnv(t, nil)
	env.deps.PaymentTimeout = 20 * time.Millisecond
	s := env.session(t, buyerUser)

	_, err := s.BuyNow("1")
	require.NoError(t, err)
	_, err = s.SubmitPayment(testAddress, "")
	require.NoError(t, err)

	s.Wait()

	status := s.CheckoutStatus()
	assert.False(t, status.Processing)
	assert.Equal(t, context.DeadlineExceeded.Error(), status.LastError)
	assert.Equal(t, 1, s.CartSummary().ItemCount)
}

func TestSession_CloseAbandonsPayment(t *testing.T) {
	env := newTestEnv(t, nil)
	s := NewSession(buyerUser, env.deps)

	_, err := s.BuyNow("1")
	require.NoError(t, err)
	_, err = s.SubmitPayment(testAddress, "")
	require.NoError(t, err)

	s.Close()

	assert.Empty(t, s.Orders())
	_, err = s.SubmitPayment(testAddress, "")
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_ReenteringCheckoutKeepsPaymentGuard(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, buyerUser)

	_, err := s.BuyNow("4")
	require.NoError(t, err)
	_, err = s.SubmitPayment(testAddress, "")
	require.NoError(t, err)

	snap, err := s.Navigate(models.ViewCheckout)
	require.NoError(t, err)
	assert.Equal(t, models.ViewCheckout, snap.Screen)
	assert.True(t, snap.Checkout.Processing)

	_, err = s.SubmitPayment(testAddress, "")
	assert.ErrorIs(t, err, ErrPaymentInProgress)

	close(env.gateway.release)
	s.Wait()

	assert.Equal(t, int32(1), env.gateway.calls.Load())
	assert.Len(t, s.Orders(), 1)
	assert.Equal(t, models.ViewHome, s.Snapshot().Screen)
}

func TestSession_ClosedSessionRejectsMutations(t *testing.T) {
	env := newTestEnv(t, nil)
	s := NewSession(buyerUser, env.deps)

	_, err := s.AddToCart("1")
	require.NoError(t, err)
	s.Close()

	_, err = s.AddToCart("2")
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.RemoveFromCart("1")
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.UpdateQuantity("1", 3)
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.Navigate(models.ViewCheckout)
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.SelectProduct("1")
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.BuyNow("1")
	assert.ErrorIs(t, err, ErrSessionClosed)

	assert.Equal(t, 1, s.CartSummary().ItemCount)
}

func TestSession_RoleGatedNavigation(t *testing.T) {
	env := newTestEnv(t, nil)

	guest := env.session(t, nil)
	_, err := guest.Navigate(models.ViewFarmerDashboard)
	assert.ErrorIs(t, err, ErrViewNotPermitted)
	_, err = guest.Navigate(models.ViewAdmin)
	assert.ErrorIs(t, err, ErrViewNotPermitted)
	_, err = guest.Navigate(models.View("nowhere"))
	assert.ErrorIs(t, err, ErrUnknownView)
	assert.Equal(t, models.ViewMarketplace, guest.Snapshot().Screen)

	farmer := env.session(t, farmerUser)
	snap, err := farmer.Navigate(models.ViewFarmerDashboard)
	require.NoError(t, err)
	assert.Equal(t, models.ViewFarmerDashboard, snap.Screen)
	assert.Contains(t, snap.NavOptions, models.ViewFarmerDashboard)

	admin := env.session(t, adminUser)
	_, err = admin.Navigate(models.ViewAdmin)
	assert.NoError(t, err)
	_, err = admin.Navigate(models.ViewFarmerDashboard)
	assert.ErrorIs(t, err, ErrViewNotPermitted)
}

func TestSession_SelectProduct(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, nil)

	snap, err := s.SelectProduct("3")
	require.NoError(t, err)
	assert.Equal(t, models.ViewProductDetail, snap.Screen)
	require.NotNil(t, snap.View.SelectedProduct)
	assert.Equal(t, "3", snap.View.SelectedProduct.ID)

	_, err = s.SelectProduct("404")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = s.Navigate(models.ViewCheckout)
	require.NoError(t, err)
	_, err = s.SelectProduct("1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.ViewCheckout, s.Snapshot().Screen)
}

func TestSession_CartOperations(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, nil)

	_, err := s.AddToCart("404")
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = s.AddToCart("1")
	require.NoError(t, err)
	summary, err := s.UpdateQuantity("1", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Items[0].CartQuantity)

	summary, err = s.UpdateQuantity("1", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.ItemCount)
	assert.Equal(t, int64(4*1500+2500), summary.Totals.Total)

	summary, err = s.RemoveFromCart("1")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Equal(t, models.Totals{}, summary.Totals)

	_, err = s.RemoveFromCart("1")
	assert.NoError(t, err)
}

func TestSession_BuyNow(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, nil)

	snap, err := s.BuyNow("2")
	require.NoError(t, err)
	assert.Equal(t, models.ViewCheckout, snap.Screen)
	assert.Equal(t, 1, snap.CartCount)
}

func TestSession_PriceRecommendation(t *testing.T) {
	advisor := &fakeAdvisor{rec: &models.PriceRecommendation{MinPrice: 2000, MaxPrice: 3000, RecommendedPrice: 2500, Reason: "harvest season"}}
	env := newTestEnv(t, advisor)
	s := env.session(t, farmerUser)
	ctx := context.Background()

	_, err := s.RequestPriceRecommendation(ctx)
	assert.ErrorIs(t, err, ErrNotOnDashboard)

	_, err = s.Navigate(models.ViewFarmerDashboard)
	require.NoError(t, err)
	_, err = s.RequestPriceRecommendation(ctx)
	assert.ErrorIs(t, err, ErrDraftNameRequired)

	_, err = s.UpdateDraft(models.ListingDraft{Name: "  White Yam ", Category: models.CategoryTubers})
	require.NoError(t, err)

	rec, err := s.RequestPriceRecommendation(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, float64(2500), rec.RecommendedPrice)
	assert.Equal(t, models.PriceQuery{ProductName: "White Yam", Category: models.CategoryTubers, Location: "Lagos"}, advisor.lastQuery())

	dash, err := s.Dashboard()
	require.NoError(t, err)
	assert.False(t, dash.PriceLoading)
	require.NotNil(t, dash.Recommendation)
	assert.Equal(t, "harvest season", dash.Recommendation.Reason)

	dash, err = s.UpdateDraft(models.ListingDraft{Name: "Yellow Garri", Category: models.CategoryTubers})
	require.NoError(t, err)
	assert.Nil(t, dash.Recommendation, "a new product name drops the old recommendation")
}

func TestSession_CancelledPriceRequestKeepsRecommendation(t *testing.T) {
	advisor := &fakeAdvisor{rec: &models.PriceRecommendation{MinPrice: 2000, MaxPrice: 3000, RecommendedPrice: 2500}}
	env := newTestEnv(t, advisor)
	s := env.session(t, farmerUser)

	_, err := s.Navigate(models.ViewFarmerDashboard)
	require.NoError(t, err)
	_, err = s.UpdateDraft(models.ListingDraft{Name: "Tomatoes", Category: models.CategoryCrops})
	require.NoError(t, err)
	_, err = s.RequestPriceRecommendation(context.Background())
	require.NoError(t, err)

	advisor.release = make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := s.RequestPriceRecommendation(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rec)
	close(advisor.release)

	dash, err := s.Dashboard()
	require.NoError(t, err)
	assert.False(t, dash.PriceLoading)
	require.NotNil(t, dash.Recommendation)
	assert.Equal(t, float64(2500), dash.Recommendation.RecommendedPrice)
}

func TestSession_PriceRecommendationUnavailable(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, farmerUser)

	_, err := s.Navigate(models.ViewFarmerDashboard)
	require.NoError(t, err)
	_, err = s.UpdateDraft(models.ListingDraft{Name: "Maize", Category: models.CategoryGrains})
	require.NoError(t, err)

	rec, err := s.RequestPriceRecommendation(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSession_StalePriceRecommendationDropped(t *testing.T) {
	advisor := &fakeAdvisor{
		rec:     &models.PriceRecommendation{MinPrice: 1, MaxPrice: 2, RecommendedPrice: 1.5},
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	env := newTestEnv(t, advisor)
	s := env.session(t, farmerUser)

	_, err := s.Navigate(models.ViewFarmerDashboard)
	require.NoError(t, err)
	_, err = s.UpdateDraft(models.ListingDraft{Name: "Tomatoes", Category: models.CategoryFruits})
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() {
		_, err := s.RequestPriceRecommendation(context.Background())
		errCh <- err
	}()
	<-advisor.started

	dash, err := s.Dashboard()
	require.NoError(t, err)
	assert.True(t, dash.PriceLoading)

	_, err = s.RequestPriceRecommendation(context.Background())
	assert.ErrorIs(t, err, ErrPriceRequestInProgress)

	_, err = s.Navigate(models.ViewMarketplace)
	require.NoError(t, err)
	close(advisor.release)

	assert.ErrorIs(t, <-errCh, ErrStaleResult)

	_, err = s.Navigate(models.ViewFarmerDashboard)
	require.NoError(t, err)
	dash, err = s.Dashboard()
	require.NoError(t, err)
	assert.False(t, dash.PriceLoading)
	assert.Nil(t, dash.Recommendation)
}

func TestSession_DashboardFarmerOnly(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, buyerUser)

	_, err := s.Dashboard()
	assert.ErrorIs(t, err, ErrFarmerOnly)
	_, err = s.UpdateDraft(models.ListingDraft{Name: "x"})
	assert.ErrorIs(t, err, ErrFarmerOnly)
	_, err = s.RequestPriceRecommendation(context.Background())
	assert.ErrorIs(t, err, ErrFarmerOnly)
	_, err = s.SubmitListing()
	assert.ErrorIs(t, err, ErrFarmerOnly)
}

func TestSession_SetDashboardTab(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, farmerUser)

	dash, err := s.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, models.TabListings, dash.Tab)

	dash, err = s.SetDashboardTab(models.TabAnalytics)
	require.NoError(t, err)
	assert.Equal(t, models.TabAnalytics, dash.Tab)

	_, err = s.SetDashboardTab(models.DashboardTab("settings"))
	assert.ErrorIs(t, err, ErrInvalidDraft)
}

func TestSession_SubmitListing(t *testing.T) {
	env := newTestEnv(t, nil)
	s := env.session(t, farmerUser)

	_, err := s.Navigate(models.ViewFarmerDashboard)
	require.NoError(t, err)

	_, err = s.UpdateDraft(models.ListingDraft{Name: "Plantain", Category: models.CategoryFruits})
	require.NoError(t, err)
	_, err = s.SubmitListing()
	assert.ErrorIs(t, err, ErrInvalidDraft, "price is required")

	_, err = s.UpdateDraft(models.ListingDraft{Name: "Plantain", Category: models.CategoryFruits, Price: 4000, Unit: "Bunch", Quantity: 30})
	require.NoError(t, err)
	listing, err := s.SubmitListing()
	require.NoError(t, err)
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "u1", listing.FarmerID)
	assert.Equal(t, "Lagos", listing.Location)
	assert.Equal(t, int64(4000), listing.Price)

	dash, err := s.Dashboard()
	require.NoError(t, err)
	assert.Empty(t, dash.Draft.Name)
	assert.Equal(t, models.CategoryCrops, dash.Draft.Category)
	require.Len(t, dash.Listings, 1)
	assert.Equal(t, listing.ID, dash.Listings[0].ID)

	_, err = s.UpdateDraft(models.ListingDraft{Category: models.Category("Fish")})
	assert.ErrorIs(t, err, ErrInvalidDraft)
}
