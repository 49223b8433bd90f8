package models

type LoginRequest struct {
	Phone    string `json:"phone" form:"phone" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type NavigateRequest struct {
	View View `json:"view" form:"view" binding:"required"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required,max=9999"`
}

type CheckoutRequest struct {
	FullName string `json:"full_name" form:"full_name" binding:"required"`
	Phone    string `json:"phone" form:"phone" binding:"required"`
	Street   string `json:"street" form:"street" binding:"required"`
	Email    string `json:"email" form:"email" binding:"omitempty,email"`
}

type TabRequest struct {
	Tab DashboardTab `json:"tab" form:"tab" binding:"required,oneof=listings orders analytics"`
}

type DraftRequest struct {
	Name        string   `json:"name" form:"name"`
	Category    Category `json:"category" form:"category"`
	Price       int64    `json:"price" form:"price" binding:"omitempty,min=0"`
	Unit        string   `json:"unit" form:"unit"`
	Quantity    int      `json:"quantity" form:"quantity" binding:"omitempty,min=0"`
	Description string   `json:"description" form:"description"`
}

type CatalogResponse struct {
	Products []Product     `json:"products"`
	Total    int           `json:"total"`
	Filter   ProductFilter `json:"filter"`
}
