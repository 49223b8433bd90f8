package services

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrUnknownView        = errors.New("unknown view")
	ErrInvalidTransition  = errors.New("transition not allowed from current screen")
	ErrViewNotPermitted   = errors.New("view not available for this user")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrPaymentInProgress  = errors.New("payment already in progress")
	ErrNotOnCheckout      = errors.New("payment can only be submitted from checkout")
	ErrNotOnDashboard     = errors.New("farmer dashboard is not open")
	ErrFarmerOnly         = errors.New("farmer account required")
	ErrDraftNameRequired  = errors.New("product name is required")
	ErrInvalidDraft       = errors.New("listing draft is incomplete")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionClosed      = errors.New("session closed")
	ErrInvalidCredentials = errors.New("invalid phone or password")
)
