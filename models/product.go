package models

type Category string

const (
	CategoryCrops     Category = "Crops"
	CategoryLivestock Category = "Livestock"
	CategoryTubers    Category = "Tubers"
	CategoryFruits    Category = "Fruits"
	CategoryGrains    Category = "Grains"
	CategoryPoultry   Category = "Poultry"
)

// FilterAll is the wildcard accepted by the category and location filters.
const FilterAll = "All"

var Categories = []Category{
	CategoryCrops,
	CategoryLivestock,
	CategoryTubers,
	CategoryFruits,
	CategoryGrains,
	CategoryPoultry,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Product struct {
	ID          string   `json:"id" yaml:"id"`
	FarmerID    string   `json:"farmer_id" yaml:"farmer_id"`
	FarmerName  string   `json:"farmer_name" yaml:"farmer_name"`
	Name        string   `json:"name" yaml:"name"`
	Category    Category `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Price       int64    `json:"price" yaml:"price"`
	Unit        string   `json:"unit" yaml:"unit"`
	Quantity    int      `json:"quantity" yaml:"quantity"`
	Location    string   `json:"location" yaml:"location"`
	ImageURL    string   `json:"image_url" yaml:"image_url"`
	Rating      float64  `json:"rating" yaml:"rating"`
}

type ProductFilter struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
	Location string `form:"location" json:"location"`
}
