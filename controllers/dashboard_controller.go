package controllers

import (
	"agrodirect/middleware"
	"agrodirect/models"
	"agrodirect/repositories"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	orders *repositories.OrderRepository
}

func NewDashboardController(orders *repositories.OrderRepository) *DashboardController {
	return &DashboardController{orders: orders}
}

// @Summary Farmer dashboard
// @Tags Farmer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.DashboardState}
// @Router /dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	state, err := middleware.CurrentSession(c).Dashboard()
	if err != nil {
		respondError(c, "Dashboard unavailable", err)
		return
	}

	respondOK(c, http.StatusOK, "Dashboard retrieved", state)
}

// @Summary Farmer orders
// @Description Orders containing this farmer's products
// @Tags Farmer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=[]models.Order}
// @Router /dashboard/orders [get]
func (ctrl *DashboardController) GetOrders(c *gin.Context) {
	user := middleware.CurrentSession(c).User()
	respondOK(c, http.StatusOK, "Orders retrieved", ctrl.orders.FindByFarmer(user.ID))
}

// @Summary Switch tab
// @Tags Farmer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.TabRequest true "Tab"
// @Success 200 {object} models.Response{data=models.DashboardState}
// @Router /dashboard/tab [patch]
func (ctrl *DashboardController) SetTab(c *gin.Context) {
	var req models.TabRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	state, err := middleware.CurrentSession(c).SetDashboardTab(req.Tab)
	if err != nil {
		respondError(c, "Failed to switch tab", err)
		return
	}

	respondOK(c, http.StatusOK, "Tab updated", state)
}

// @Summary Update listing draft
// @Tags Farmer
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.DraftRequest true "Draft"
// @Success 200 {object} models.Response{data=models.DashboardState}
// @Router /dashboard/draft [put]
func (ctrl *DashboardController) UpdateDraft(c *gin.Context) {
	var req models.DraftRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	state, err := middleware.CurrentSession(c).UpdateDraft(models.ListingDraft{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        req.Unit,
		Quantity:    req.Quantity,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, "Failed to update draft", err)
		return
	}

	respondOK(c, http.StatusOK, "Draft updated", state)
}

// @Summary AI price recommendation
// @Description Ask the AI advisor about the current draft. data is null when no recommendation is available.
// @Tags Farmer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.PriceRecommendation}
// @Failure 409 {object} models.ErrorResponse
// @Router /dashboard/price-recommendation [post]
func (ctrl *DashboardController) RequestPrice(c *gin.Context) {
	rec, err := middleware.CurrentSession(c).RequestPriceRecommendation(c.Request.Context())
	if err != nil {
		respondError(c, "Price recommendation unavailable", err)
		return
	}
	if rec == nil {
		respondOK(c, http.StatusOK, "No recommendation available", nil)
		return
	}

	respondOK(c, http.StatusOK, "Recommendation ready", rec)
}

// @Summary Submit listing
// @Tags Farmer
// @Security BearerAuth
// @Produce json
// @Success 201 {object} models.Response{data=models.Listing}
// @Failure 400 {object} models.ErrorResponse
// @Router /dashboard/listings [post]
func (ctrl *DashboardController) SubmitListing(c *gin.Context) {
	listing, err := middleware.CurrentSession(c).SubmitListing()
	if err != nil {
		respondError(c, "Failed to submit listing", err)
		return
	}

	respondOK(c, http.StatusCreated, "Listing submitted", listing)
}
