package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

type DeliveryAddress struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
}

type Order struct {
	ID          string          `json:"id"`
	BuyerID     string          `json:"buyer_id,omitempty"`
	FarmerIDs   []string        `json:"farmer_ids"`
	Items       []CartItem      `json:"items"`
	Subtotal    int64           `json:"subtotal"`
	DeliveryFee int64           `json:"delivery_fee"`
	TotalAmount int64           `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	Address     DeliveryAddress `json:"address"`
	PaymentRef  string          `json:"payment_ref"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentRequest struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Email   string `json:"email,omitempty"`
}

type PaymentReceipt struct {
	Reference string    `json:"reference"`
	Amount    int64     `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}

type CheckoutStatus struct {
	Processing bool   `json:"processing"`
	LastError  string `json:"last_error,omitempty"`
}
