package routes

import (
	"agrodirect/controllers"
	"agrodirect/middleware"
	"agrodirect/models"
	"agrodirect/repositories"
	"agrodirect/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Dependencies struct {
	Catalog   *services.CatalogService
	Auth      *services.AuthService
	Sessions  *services.SessionStore
	Orders    *repositories.OrderRepository
	JWTSecret string
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	authCtrl := controllers.NewAuthController(deps.Auth)
	catalogCtrl := controllers.NewCatalogController(deps.Catalog)
	sessionCtrl := &controllers.SessionController{}
	cartCtrl := &controllers.CartController{}
	checkoutCtrl := &controllers.CheckoutController{}
	dashboardCtrl := controllers.NewDashboardController(deps.Orders)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/guest", authCtrl.Guest)
	router.GET("/categories", catalogCtrl.GetCategories)
	router.GET("/locations", catalogCtrl.GetLocations)
	router.GET("/products", catalogCtrl.GetProducts)
	router.GET("/products/:id", catalogCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.Sessions))
	{
		auth.POST("/auth/logout", authCtrl.Logout)

		auth.GET("/session", sessionCtrl.GetSession)
		auth.POST("/session/navigate", sessionCtrl.Navigate)
		auth.POST("/session/products/:id/select", sessionCtrl.SelectProduct)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:id", cartCtrl.UpdateItem)
		auth.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		auth.POST("/cart/items/:id/buy-now", cartCtrl.BuyNow)

		auth.GET("/checkout", checkoutCtrl.GetCheckout)
		auth.POST("/checkout/pay", checkoutCtrl.Pay)
		auth.GET("/orders", checkoutCtrl.GetOrders)
	}

	farmer := router.Group("/dashboard")
	farmer.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.Sessions), middleware.RoleMiddleware(models.RoleFarmer))
	{
		farmer.GET("", dashboardCtrl.GetDashboard)
		farmer.GET("/orders", dashboardCtrl.GetOrders)
		farmer.PATCH("/tab", dashboardCtrl.SetTab)
		farmer.PUT("/draft", dashboardCtrl.UpdateDraft)
		farmer.POST("/price-recommendation", dashboardCtrl.RequestPrice)
		farmer.POST("/listings", dashboardCtrl.SubmitListing)
	}
}
