package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hardware-store/services"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func catalogFilterFromQuery(c *gin.Context) services.CatalogFilter {
	filter := services.CatalogFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	if v := c.Query("min_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MinPrice = d
		}
	}
	if v := c.Query("max_price"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			filter.MaxPrice = d
		}
	}
	return filter
}

// GetProducts godoc
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param search query string false "Match against name or description"
// @Param category query string false "Category ('all' matches everything)"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort query string false "name | price-asc | price-desc"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetProducts(c *gin.Context) {
	products, err := ctrl.Catalog.Products(c.Request.Context(), catalogFilterFromQuery(c))
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "data": products})
}

// GetProduct godoc
// @Summary Get one product
// @Tags Catalog
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{productId} [get]
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	productID, _ := strconv.Atoi(c.Param("productId"))
	if productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	product, err := ctrl.Catalog.Product(c.Request.Context(), productID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": product})
}

// GetTools godoc
// @Summary List rentable tools
// @Tags Catalog
// @Produce json
// @Param search query string false "Match against name or description"
// @Param category query string false "Category ('all' matches everything)"
// @Param min_price query number false "Minimum daily rate"
// @Param max_price query number false "Maximum daily rate"
// @Param sort query string false "name | price-asc | price-desc"
// @Success 200 {object} models.Response
// @Router /tools [get]
func (ctrl *CatalogController) GetTools(c *gin.Context) {
	tools, err := ctrl.Catalog.Tools(c.Request.Context(), catalogFilterFromQuery(c))
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "data": tools})
}

// GetTool godoc
// @Summary Get one tool
// @Tags Catalog
// @Produce json
// @Param toolId path int true "Tool ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /tools/{toolId} [get]
func (ctrl *CatalogController) GetTool(c *gin.Context) {
	toolID, _ := strconv.Atoi(c.Param("toolId"))
	if toolID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid tool ID"})
		return
	}

	tool, err := ctrl.Catalog.Tool(c.Request.Context(), toolID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Tool not found"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": tool})
}
