package models

type View string

const (
	ViewHome            View = "home"
	ViewMarketplace     View = "marketplace"
	ViewFarmerDashboard View = "farmer-dashboard"
	ViewCheckout        View = "checkout"
	ViewProductDetail   View = "product-detail"
	ViewChat            View = "chat"
	ViewAdmin           View = "admin"
)

var Views = []View{
	ViewHome,
	ViewMarketplace,
	ViewFarmerDashboard,
	ViewCheckout,
	ViewProductDetail,
	ViewChat,
	ViewAdmin,
}

func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

type ViewState struct {
	Screen          View     `json:"screen"`
	SelectedProduct *Product `json:"selected_product,omitempty"`
	ShowSuccess     bool     `json:"show_success"`
}

// SessionSnapshot is everything a client needs to render the current screen.
type SessionSnapshot struct {
	ID          string         `json:"id"`
	User        *User          `json:"user"`
	View        ViewState      `json:"view"`
	Screen      View           `json:"screen"`
	CartCount   int            `json:"cart_count"`
	NavOptions  []View         `json:"nav_options"`
	Checkout    CheckoutStatus `json:"checkout"`
	LastOrderID string         `json:"last_order_id,omitempty"`
}
