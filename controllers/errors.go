package controllers

import (
	"agrodirect/models"
	"agrodirect/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUnknownView), errors.Is(err, services.ErrInvalidDraft),
		errors.Is(err, services.ErrDraftNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrViewNotPermitted), errors.Is(err, services.ErrFarmerOnly):
		return http.StatusForbidden
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrPaymentInProgress),
		errors.Is(err, services.ErrNotOnCheckout), errors.Is(err, services.ErrNotOnDashboard),
		errors.Is(err, services.ErrCartEmpty), errors.Is(err, services.ErrPriceRequestInProgress),
		errors.Is(err, services.ErrStaleResult), errors.Is(err, services.ErrSessionClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, message string, err error) {
	_ = c.Error(err)
	c.JSON(statusFor(err), models.ErrorResponse{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}

func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request body",
		Error:   err.Error(),
	})
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}
