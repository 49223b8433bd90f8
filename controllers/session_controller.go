package controllers

import (
	"agrodirect/middleware"
	"agrodirect/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SessionController struct{}

// @Summary Get session
// @Description Current screen, cart badge count and navigation options
// @Tags Session
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response{data=models.SessionSnapshot}
// @Router /session [get]
func (ctrl *SessionController) GetSession(c *gin.Context) {
	session := middleware.CurrentSession(c)
	respondOK(c, http.StatusOK, "Session retrieved", session.Snapshot())
}

// @Summary Navigate
// @Description Switch screen; clears the order success flag
// @Tags Session
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.NavigateRequest true "Target view"
// @Success 200 {object} models.Response{data=models.SessionSnapshot}
// @Failure 403 {object} models.ErrorResponse
// @Router /session/navigate [post]
func (ctrl *SessionController) Navigate(c *gin.Context) {
	var req models.NavigateRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	snapshot, err := middleware.CurrentSession(c).Navigate(req.View)
	if err != nil {
		respondError(c, "Navigation failed", err)
		return
	}

	respondOK(c, http.StatusOK, "Navigated", snapshot)
}

// @Summary Select product
// @Description Open the product detail screen
// @Tags Session
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.SessionSnapshot}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /session/products/{id}/select [post]
func (ctrl *SessionController) SelectProduct(c *gin.Context) {
	snapshot, err := middleware.CurrentSession(c).SelectProduct(c.Param("id"))
	if err != nil {
		respondError(c, "Failed to select product", err)
		return
	}

	respondOK(c, http.StatusOK, "Product selected", snapshot)
}
