package controllers

import (
	"agrodirect/middleware"
	"agrodirect/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CartController struct{}

// @Summary Get cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	respondOK(c, http.StatusOK, "Cart retrieved", middleware.CurrentSession(c).CartSummary())
}

// @Summary Add to cart
// @Description Adds one unit; repeated adds increase the quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := middleware.CurrentSession(c).AddToCart(req.ProductID)
	if err != nil {
		respondError(c, "Failed to add to cart", err)
		return
	}

	respondOK(c, http.StatusOK, "Added to cart", summary)
}

// @Summary Update quantity
// @Description Quantities below 1 are stored as 1
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	summary, err := middleware.CurrentSession(c).UpdateQuantity(c.Param("id"), *req.Quantity)
	if err != nil {
		respondError(c, "Failed to update quantity", err)
		return
	}

	respondOK(c, http.StatusOK, "Quantity updated", summary)
}

// @Summary Remove from cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	summary, err := middleware.CurrentSession(c).RemoveFromCart(c.Param("id"))
	if err != nil {
		respondError(c, "Failed to remove item", err)
		return
	}

	respondOK(c, http.StatusOK, "Item removed", summary)
}

// @Summary Buy now
// @Description Add one unit and open checkout
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.SessionSnapshot}
// @Router /cart/items/{id}/buy-now [post]
func (ctrl *CartController) BuyNow(c *gin.Context) {
	snapshot, err := middleware.CurrentSession(c).BuyNow(c.Param("id"))
	if err != nil {
		respondError(c, "Failed to start checkout", err)
		return
	}

	respondOK(c, http.StatusOK, "Proceed to checkout", snapshot)
}
