package controllers

import (
	"agrodirect/middleware"
	"agrodirect/models"
	"agrodirect/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// @Summary Login
// @Description Sign in with a demo account and open a storefront session
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := ctrl.auth.Login(req)
	if err != nil {
		respondError(c, "Login failed", err)
		return
	}

	respondOK(c, http.StatusOK, "Login successful", resp)
}

// @Summary Guest session
// @Description Open a storefront session without signing in
// @Tags Auth
// @Produce json
// @Success 201 {object} models.Response{data=models.LoginResponse}
// @Router /auth/guest [post]
func (ctrl *AuthController) Guest(c *gin.Context) {
	resp, err := ctrl.auth.Guest()
	if err != nil {
		respondError(c, "Failed to open session", err)
		return
	}

	respondOK(c, http.StatusCreated, "Guest session created", resp)
}

// @Summary Logout
// @Description Close the current session
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	session := middleware.CurrentSession(c)
	ctrl.auth.Logout(session.ID)
	respondOK(c, http.StatusOK, "Logged out", nil)
}
