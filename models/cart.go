package models

// CartItem is a catalog product plus the quantity the buyer wants.
type CartItem struct {
	Product
	CartQuantity int `json:"cart_quantity"`
}

func (i CartItem) LineTotal() int64 {
	return i.Price * int64(i.CartQuantity)
}

type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Total       int64 `json:"total"`
}

type CartSummary struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Totals    Totals     `json:"totals"`
}
