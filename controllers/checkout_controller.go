package controllers

import (
	"agrodirect/middleware"
	"agrodirect/models"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{}

type checkoutView struct {
	Cart   models.CartSummary    `json:"cart"`
	Status models.CheckoutStatus `json:"status"`
}

// @Summary Get checkout
// @Description Cart lines, totals and payment status
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /checkout [get]
func (ctrl *CheckoutController) GetCheckout(c *gin.Context) {
	session := middleware.CurrentSession(c)
	respondOK(c, http.StatusOK, "Checkout retrieved", checkoutView{
		Cart:   session.CartSummary(),
		Status: session.CheckoutStatus(),
	})
}

// @Summary Pay
// @Description Submit the cart for payment. Returns immediately with processing=true; poll GET /session.
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Delivery details"
// @Success 202 {object} models.Response{data=models.CheckoutStatus}
// @Failure 409 {object} models.ErrorResponse
// @Router /checkout/pay [post]
func (ctrl *CheckoutController) Pay(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	addr := models.DeliveryAddress{
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
		Street:   strings.TrimSpace(req.Street),
	}

	status, err := middleware.CurrentSession(c).SubmitPayment(addr, strings.TrimSpace(req.Email))
	if err != nil {
		respondError(c, "Payment not started", err)
		return
	}

	respondOK(c, http.StatusAccepted, "Payment processing", status)
}

// @Summary Order history
// @Description Orders completed in this session
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Order}
// @Router /orders [get]
func (ctrl *CheckoutController) GetOrders(c *gin.Context) {
	respondOK(c, http.StatusOK, "Orders retrieved", middleware.CurrentSession(c).Orders())
}
