package services

import (
	"agrodirect/models"
	"agrodirect/repositories"
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPriceRequestInProgress = errors.New("price recommendation already in progress")
	ErrStaleResult            = errors.New("screen changed before the request finished")
)

const defaultPriceLocation = "Lagos"

type SessionDeps struct {
	Catalog        *CatalogService
	Pricing        *PricingService
	Gateway        PaymentGateway
	Notifier       OrderNotifier
	Orders         *repositories.OrderRepository
	Listings       *repositories.ListingRepository
	DeliveryFee    int64
	PaymentTimeout time.Duration
	Logger         *zap.Logger
}

// Session is the state container of one storefront client. All mutations go
// through its methods, which hold mu for the whole operation.
type Session struct {
	ID string

	deps   *SessionDeps
	logger *zap.Logger
	user   *models.User

	mu            sync.Mutex
	cart          *Cart
	router        *ViewRouter
	dashboard     models.DashboardState
	checkout      models.CheckoutStatus
	paymentSeq    uint64
	cancelPayment context.CancelFunc
	orderIDs      []string
	lastSeen      time.Time
	closed        bool

	wg sync.WaitGroup
}

func NewSession(user *models.User, deps *SessionDeps) *Session {
	id := uuid.NewString()
	logger := deps.Logger.With(zap.String("session_id", id))
	if user != nil {
		logger = logger.With(zap.String("user_id", user.ID))
	}

	return &Session{
		ID:        id,
		deps:      deps,
		logger:    logger,
		user:      user,
		cart:      NewCart(),
		router:    NewViewRouter(),
		dashboard: models.DashboardState{Tab: models.TabListings, Draft: models.ListingDraft{Category: models.CategoryCrops}},
		lastSeen:  time.Now(),
	}
}

func (s *Session) User() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) Snapshot() models.SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() models.SessionSnapshot {
	snap := models.SessionSnapshot{
		ID:         s.ID,
		User:       s.User(),
		View:       s.router.State(),
		Screen:     s.router.Screen(),
		CartCount:  s.cart.ItemCount(),
		NavOptions: NavOptions(s.user),
		Checkout:   s.checkout,
	}
	if n := len(s.orderIDs); n > 0 {
		snap.LastOrderID = s.orderIDs[n-1]
	}
	return snap
}

// afterTransition abandons async work owned by the screen that was left.
func (s *Session) afterTransition(left models.View) {
	if s.cancelPayment != nil {
		s.logger.Info("abandoning in-flight payment", zap.String("screen", string(left)))
		s.cancelPayment()
		s.cancelPayment = nil
		s.paymentSeq++
		s.checkout.Processing = false
	}
	s.dashboard.PriceLoading = false
}

func (s *Session) Navigate(target models.View) (models.SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !target.Valid() {
		return models.SessionSnapshot{}, ErrUnknownView
	}
	if !CanNavigate(s.user, target) {
		return models.SessionSnapshot{}, ErrViewNotPermitted
	}

	if s.closed {
		return models.SessionSnapshot{}, ErrSessionClosed
	}

	left := s.router.Screen()
	// re-entering checkout must not release the payment guard
	if left == target && s.checkout.Processing {
		return s.snapshotLocked(), nil
	}
	if err := s.router.Navigate(target); err != nil {
		return models.SessionSnapshot{}, err
	}
	s.afterTransition(left)
	return s.snapshotLocked(), nil
}

func (s *Session) SelectProduct(id string) (models.SessionSnapshot, error) {
	product, err := s.deps.Catalog.GetProduct(id)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.SessionSnapshot{}, ErrSessionClosed
	}

	left := s.router.Screen()
	if err := s.router.SelectProduct(product); err != nil {
		return models.SessionSnapshot{}, err
	}
	s.afterTransition(left)
	return s.snapshotLocked(), nil
}

func (s *Session) AddToCart(productID string) (models.CartSummary, error) {
	product, err := s.deps.Catalog.GetProduct(productID)
	if err != nil {
		return models.CartSummary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.CartSummary{}, ErrSessionClosed
	}
	if s.checkout.Processing {
		return models.CartSummary{}, ErrPaymentInProgress
	}
	s.cart.Add(product)
	return s.cartSummaryLocked(), nil
}

// BuyNow adds the product and opens checkout.
func (s *Session) BuyNow(productID string) (models.SessionSnapshot, error) {
	product, err := s.deps.Catalog.GetProduct(productID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.SessionSnapshot{}, ErrSessionClosed
	}
	if s.checkout.Processing {
		return models.SessionSnapshot{}, ErrPaymentInProgress
	}
	s.cart.Add(product)

	left := s.router.Screen()
	if err := s.router.Navigate(models.ViewCheckout); err != nil {
		return models.SessionSnapshot{}, err
	}
	s.afterTransition(left)
	return s.snapshotLocked(), nil
}

func (s *Session) RemoveFromCart(productID string) (models.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.CartSummary{}, ErrSessionClosed
	}
	if s.checkout.Processing {
		return models.CartSummary{}, ErrPaymentInProgress
	}
	s.cart.Remove(productID)
	return s.cartSummaryLocked(), nil
}

func (s *Session) UpdateQuantity(productID string, q int) (models.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return models.CartSummary{}, ErrSessionClosed
	}
	if s.checkout.Processing {
		return models.CartSummary{}, ErrPaymentInProgress
	}
	s.cart.UpdateQuantity(productID, q)
	return s.cartSummaryLocked(), nil
}

func (s *Session) CartSummary() models.CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartSummaryLocked()
}

func (s *Session) cartSummaryLocked() models.CartSummary {
	return models.CartSummary{
		Items:     s.cart.Items(),
		ItemCount: s.cart.ItemCount(),
		Totals:    ComputeTotals(s.cart, s.deps.DeliveryFee),
	}
}

func (s *Session) CheckoutStatus() models.CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkout
}

// SubmitPayment starts the payment for the current cart and returns at once
// with Processing set. The result is applied by finishPayment unless the
// session has left checkout in the meantime.
func (s *Session) SubmitPayment(addr models.DeliveryAddress, email string) (models.CheckoutStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return s.checkout, ErrSessionClosed
	case s.checkout.Processing:
		return s.checkout, ErrPaymentInProgress
	case s.router.Screen() != models.ViewCheckout:
		return s.checkout, ErrNotOnCheckout
	case s.cart.IsEmpty():
		return s.checkout, ErrCartEmpty
	}

	order := s.buildOrderLocked(addr)
	timeout := s.deps.PaymentTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	s.paymentSeq++
	seq := s.paymentSeq
	epoch := s.router.Epoch()
	s.cancelPayment = cancel
	s.checkout = models.CheckoutStatus{Processing: true}

	req := models.PaymentRequest{OrderID: order.ID, Amount: order.TotalAmount, Email: email}
	s.logger.Info("payment submitted", zap.String("order_id", order.ID), zap.Int64("amount", order.TotalAmount))

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer cancel()
		receipt, err := s.deps.Gateway.Charge(ctx, req)
		s.finishPayment(seq, epoch, order, receipt, err)
	}()

	return s.checkout, nil
}

func (s *Session) buildOrderLocked(addr models.DeliveryAddress) models.Order {
	items := s.cart.Items()
	totals := ComputeTotals(s.cart, s.deps.DeliveryFee)

	farmerIDs := []string{}
	seen := map[string]bool{}
	for _, item := range items {
		if !seen[item.FarmerID] {
			seen[item.FarmerID] = true
			farmerIDs = append(farmerIDs, item.FarmerID)
		}
	}

	order := models.Order{
		ID:          uuid.NewString(),
		FarmerIDs:   farmerIDs,
		Items:       items,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		TotalAmount: totals.Total,
		Status:      models.OrderPending,
		Address:     addr,
	}
	if s.user != nil {
		order.BuyerID = s.user.ID
	}
	return order
}

func (s *Session) finishPayment(seq, epoch uint64, order models.Order, receipt models.PaymentReceipt, err error) {
	s.mu.Lock()

	if s.closed || seq != s.paymentSeq || epoch != s.router.Epoch() {
		s.mu.Unlock()
		if err == nil {
			s.logger.Warn("payment captured after checkout was abandoned",
				zap.String("order_id", order.ID), zap.String("payment_ref", receipt.Reference))
		} else {
			s.logger.Info("discarding abandoned payment", zap.String("order_id", order.ID), zap.Error(err))
		}
		return
	}

	s.cancelPayment = nil
	if err != nil {
		s.checkout = models.CheckoutStatus{LastError: err.Error()}
		s.mu.Unlock()
		s.logger.Warn("payment failed", zap.String("order_id", order.ID), zap.Error(err))
		return
	}

	order.PaymentRef = receipt.Reference
	order.CreatedAt = receipt.PaidAt
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}

	s.checkout = models.CheckoutStatus{}
	s.deps.Orders.Save(order)
	s.orderIDs = append(s.orderIDs, order.ID)
	s.cart.Clear()
	if err := s.router.CompleteCheckout(); err != nil {
		s.logger.Error("checkout completion rejected by router", zap.Error(err))
	}
	s.mu.Unlock()

	s.logger.Info("order completed", zap.String("order_id", order.ID), zap.String("payment_ref", order.PaymentRef))
	if s.deps.Notifier != nil {
		if err := s.deps.Notifier.OrderPlaced(order); err != nil {
			s.logger.Warn("order notification failed", zap.String("order_id", order.ID), zap.Error(err))
		}
	}
}

func (s *Session) Orders() []models.Order {
	s.mu.Lock()
	ids := make([]string, len(s.orderIDs))
	copy(ids, s.orderIDs)
	s.mu.Unlock()

	orders := []models.Order{}
	for _, id := range ids {
		if order, err := s.deps.Orders.FindByID(id); err == nil {
			orders = append(orders, *order)
		}
	}
	return orders
}

func (s *Session) requireFarmerLocked() error {
	if s.user == nil || s.user.Role != models.RoleFarmer {
		return ErrFarmerOnly
	}
	return nil
}

func (s *Session) Dashboard() (models.DashboardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFarmerLocked(); err != nil {
		return models.DashboardState{}, err
	}
	return s.dashboardLocked(), nil
}

func (s *Session) dashboardLocked() models.DashboardState {
	state := s.dashboard
	if state.Recommendation != nil {
		rec := *state.Recommendation
		state.Recommendation = &rec
	}
	state.Listings = s.deps.Listings.FindByFarmer(s.user.ID)
	return state
}

func (s *Session) SetDashboardTab(tab models.DashboardTab) (models.DashboardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFarmerLocked(); err != nil {
		return models.DashboardState{}, err
	}
	if !tab.Valid() {
		return models.DashboardState{}, ErrInvalidDraft
	}
	s.dashboard.Tab = tab
	return s.dashboardLocked(), nil
}

// UpdateDraft replaces the listing draft. A new product name or category
// clears the previous recommendation since it no longer applies.
func (s *Session) UpdateDraft(draft models.ListingDraft) (models.DashboardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFarmerLocked(); err != nil {
		return models.DashboardState{}, err
	}
	if draft.Category == "" {
		draft.Category = models.CategoryCrops
	}
	if !draft.Category.Valid() {
		return models.DashboardState{}, ErrInvalidDraft
	}
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name != s.dashboard.Draft.Name || draft.Category != s.dashboard.Draft.Category {
		s.dashboard.Recommendation = nil
	}
	s.dashboard.Draft = draft
	return s.dashboardLocked(), nil
}

// RequestPriceRecommendation asks the pricing service about the current
// draft. It blocks the caller but not the session. A nil recommendation
// with a nil error means none is available.
func (s *Session) RequestPriceRecommendation(ctx context.Context) (*models.PriceRecommendation, error) {
	s.mu.Lock()
	if err := s.requireFarmerLocked(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if s.router.Screen() != models.ViewFarmerDashboard {
		s.mu.Unlock()
		return nil, ErrNotOnDashboard
	}
	if s.dashboard.Draft.Name == "" {
		s.mu.Unlock()
		return nil, ErrDraftNameRequired
	}
	if s.dashboard.PriceLoading {
		s.mu.Unlock()
		return nil, ErrPriceRequestInProgress
	}

	location := s.user.Location
	if location == "" {
		location = defaultPriceLocation
	}
	query := models.PriceQuery{
		ProductName: s.dashboard.Draft.Name,
		Category:    s.dashboard.Draft.Category,
		Location:    location,
	}
	epoch := s.router.Epoch()
	s.dashboard.PriceLoading = true
	s.mu.Unlock()

	rec := s.deps.Pricing.Recommend(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || epoch != s.router.Epoch() {
		s.logger.Info("dropping stale price recommendation", zap.String("product", query.ProductName))
		return nil, ErrStaleResult
	}
	s.dashboard.PriceLoading = false
	if rec == nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	s.dashboard.Recommendation = rec
	if rec == nil {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

func (s *Session) SubmitListing() (models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireFarmerLocked(); err != nil {
		return models.Listing{}, err
	}
	if s.router.Screen() != models.ViewFarmerDashboard {
		return models.Listing{}, ErrNotOnDashboard
	}

	draft := s.dashboard.Draft
	if draft.Name == "" || !draft.Category.Valid() || draft.Price <= 0 || draft.Quantity < 0 {
		return models.Listing{}, ErrInvalidDraft
	}

	listing := s.deps.Listings.Create(s.user.ID, s.user.Location, draft)
	s.dashboard.Draft = models.ListingDraft{Category: models.CategoryCrops}
	s.dashboard.Recommendation = nil
	s.logger.Info("listing submitted", zap.String("listing_id", listing.ID), zap.String("name", listing.Name))
	return listing, nil
}

// Close abandons in-flight work and waits for it to return.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	if s.cancelPayment != nil {
		s.cancelPayment()
		s.cancelPayment = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Wait blocks until background payments of this session have finished.
func (s *Session) Wait() {
	s.wg.Wait()
}
