package services

import (
	"agrodirect/models"
	"fmt"
)

type RouteEvent string

const (
	EventNavigate         RouteEvent = "navigate"
	EventSelectProduct    RouteEvent = "select-product"
	EventCheckoutComplete RouteEvent = "checkout-complete"
)

type transition struct {
	// from lists the screens the event is accepted on; nil accepts any screen.
	from []models.View
	// to is the fixed target; empty means the caller supplies it.
	to models.View
}

var transitions = map[RouteEvent]transition{
	EventNavigate: {},
	EventSelectProduct: {
		from: []models.View{models.ViewHome, models.ViewMarketplace, models.ViewProductDetail},
		to:   models.ViewProductDetail,
	},
	EventCheckoutComplete: {
		from: []models.View{models.ViewCheckout},
		to:   models.ViewHome,
	},
}

func (t transition) accepts(v models.View) bool {
	if t.from == nil {
		return true
	}
	for _, from := range t.from {
		if from == v {
			return true
		}
	}
	return false
}

// ViewRouter is the screen state machine of one session.
type ViewRouter struct {
	state models.ViewState
	epoch uint64
}

func NewViewRouter() *ViewRouter {
	return &ViewRouter{state: models.ViewState{Screen: models.ViewMarketplace}}
}

func (r *ViewRouter) fire(event RouteEvent, target models.View) error {
	t, ok := transitions[event]
	if !ok {
		return fmt.Errorf("%w: unknown event %q", ErrInvalidTransition, event)
	}
	if !t.accepts(r.state.Screen) {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, r.state.Screen)
	}
	if t.to != "" {
		target = t.to
	}
	r.state.Screen = target
	r.epoch++
	return nil
}

// Navigate moves to target and clears the success flag. The selected product
// is kept so a later return to product-detail still has it.
func (r *ViewRouter) Navigate(target models.View) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownView, target)
	}
	if err := r.fire(EventNavigate, target); err != nil {
		return err
	}
	r.state.ShowSuccess = false
	return nil
}

func (r *ViewRouter) SelectProduct(p models.Product) error {
	if err := r.fire(EventSelectProduct, ""); err != nil {
		return err
	}
	r.state.SelectedProduct = &p
	return nil
}

// CompleteCheckout records a finished order: checkout -> home with the
// success flag raised.
func (r *ViewRouter) CompleteCheckout() error {
	if err := r.fire(EventCheckoutComplete, ""); err != nil {
		return err
	}
	r.state.ShowSuccess = true
	return nil
}

func (r *ViewRouter) State() models.ViewState {
	state := r.state
	if state.SelectedProduct != nil {
		p := *state.SelectedProduct
		state.SelectedProduct = &p
	}
	return state
}

// Screen resolves the screen to render: product-detail without a selection
// falls back to marketplace.
func (r *ViewRouter) Screen() models.View {
	if r.state.Screen == models.ViewProductDetail && r.state.SelectedProduct == nil {
		return models.ViewMarketplace
	}
	return r.state.Screen
}

// Epoch changes on every transition. Async work captures it at start and
// drops its result if it has moved.
func (r *ViewRouter) Epoch() uint64 {
	return r.epoch
}

// NavOptions lists the screens the navigation bar offers to user; a nil user
// is a guest.
func NavOptions(user *models.User) []models.View {
	options := []models.View{models.ViewHome, models.ViewMarketplace}
	if user != nil {
		switch user.Role {
		case models.RoleFarmer:
			options = append(options, models.ViewFarmerDashboard)
		case models.RoleAdmin:
			options = append(options, models.ViewAdmin)
		}
	}
	return append(options, models.ViewCheckout)
}

func CanNavigate(user *models.User, target models.View) bool {
	for _, v := range NavOptions(user) {
		if v == target {
			return true
		}
	}
	return false
}
