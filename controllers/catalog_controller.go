package controllers

import (
	"agrodirect/models"
	"agrodirect/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// @Summary Get categories
// @Description Category filter options, "All" first
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	respondOK(c, http.StatusOK, "Categories retrieved", ctrl.catalog.Categories())
}

// @Summary Get locations
// @Description Locations products can be filtered by
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /locations [get]
func (ctrl *CatalogController) GetLocations(c *gin.Context) {
	respondOK(c, http.StatusOK, "Locations retrieved", ctrl.catalog.Locations())
}

// @Summary Browse products
// @Description Filter the catalog by search text, category and location
// @Tags Catalog
// @Produce json
// @Param search query string false "Matches name or description, case-insensitive"
// @Param category query string false "Category or All" default(All)
// @Param location query string false "Location or All" default(All)
// @Success 200 {object} models.Response{data=models.CatalogResponse}
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	products := ctrl.catalog.ListProducts(filter)
	message := "Products retrieved"
	if len(products) == 0 {
		message = "No products found"
	}

	respondOK(c, http.StatusOK, message, models.CatalogResponse{
		Products: products,
		Total:    len(products),
		Filter:   filter,
	})
}

// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response{data=models.Product}
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	product, err := ctrl.catalog.GetProduct(c.Param("id"))
	if err != nil {
		respondError(c, "Product not found", err)
		return
	}

	respondOK(c, http.StatusOK, "Product retrieved", product)
}
