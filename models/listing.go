package models

import "time"

type DashboardTab string

const (
	TabListings  DashboardTab = "listings"
	TabOrders    DashboardTab = "orders"
	TabAnalytics DashboardTab = "analytics"
)

func (t DashboardTab) Valid() bool {
	return t == TabListings || t == TabOrders || t == TabAnalytics
}

type PriceQuery struct {
	ProductName string   `json:"product_name"`
	Category    Category `json:"category"`
	Location    string   `json:"location"`
}

type PriceRecommendation struct {
	MinPrice         float64 `json:"min_price"`
	MaxPrice         float64 `json:"max_price"`
	RecommendedPrice float64 `json:"recommended_price"`
	Reason           string  `json:"reason"`
}

type ListingDraft struct {
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       int64    `json:"price"`
	Unit        string   `json:"unit"`
	Quantity    int      `json:"quantity"`
	Description string   `json:"description"`
}

type Listing struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmer_id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Price       int64     `json:"price"`
	Unit        string    `json:"unit"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type DashboardState struct {
	Tab            DashboardTab         `json:"tab"`
	Draft          ListingDraft         `json:"draft"`
	PriceLoading   bool                 `json:"price_loading"`
	Recommendation *PriceRecommendation `json:"recommendation"`
	Listings       []Listing            `json:"listings"`
}
