package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"hardware-store/middleware"
	"hardware-store/models"
	"hardware-store/services"
)

type CartController struct {
	Cart *services.CartService
}

func currentUser(c *gin.Context) (models.User, bool) {
	return middleware.CurrentUser(c)
}

// cartError maps service failures onto the inline-message contract:
// validation problems are 400s, everything else surfaces the backend
// body as-is.
func cartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidDates),
		errors.Is(err, services.ErrItemNotInCart),
		errors.Is(err, services.ErrEmptySelection):
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
	default:
		c.JSON(502, gin.H{"success": false, "message": err.Error()})
	}
}

// GetCart godoc
// @Summary Get the current cart
// @Description Fetch the cart from the hardware backend and rebuild the checkout selection
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Please log in to view your cart"})
		return
	}

	snapshot, selection, err := ctrl.Cart.LoadCart(c.Request.Context(), user.ID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    services.CartView(snapshot, selection),
	})
}

// AddProduct godoc
// @Summary Add a product to the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddProductRequest true "Product and quantity"
// @Success 200 {object} models.Response
// @Router /cart/product [post]
func (ctrl *CartController) AddProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req models.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	snapshot, selection, err := ctrl.Cart.AddProduct(c.Request.Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item added to cart",
		"data":    services.CartView(snapshot, selection),
	})
}

// UpdateProductQuantity godoc
// @Summary Change a product line's quantity
// @Description Quantities below 1 are rejected without touching the backend
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body models.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/product/{productId} [put]
func (ctrl *CartController) UpdateProductQuantity(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	productID, _ := strconv.Atoi(c.Param("productId"))
	if productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	snapshot, selection, err := ctrl.Cart.UpdateProductQuantity(c.Request.Context(), user.ID, productID, req.Quantity)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    services.CartView(snapshot, selection),
	})
}

// UpdateRental godoc
// @Summary Change a rental line's quantity or dates
// @Description Start must be strictly before end; violations never reach the backend
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param rentalId path int true "Rental ID"
// @Param request body models.UpdateRentalRequest true "Partial rental update"
// @Success 200 {object} models.Response
// @Router /cart/rental/{rentalId} [put]
func (ctrl *CartController) UpdateRental(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	rentalID, _ := strconv.Atoi(c.Param("rentalId"))
	if rentalID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid rental ID"})
		return
	}

	var req models.UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	snapshot, selection, err := ctrl.Cart.UpdateRental(c.Request.Context(), user.ID, rentalID, req)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    services.CartView(snapshot, selection),
	})
}

// RemoveProduct godoc
// @Summary Remove a product line
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/product/{productId} [delete]
func (ctrl *CartController) RemoveProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	productID, _ := strconv.Atoi(c.Param("productId"))
	if productID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid product ID"})
		return
	}

	snapshot, selection, err := ctrl.Cart.RemoveProduct(c.Request.Context(), user.ID, productID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item removed",
		"data":    services.CartView(snapshot, selection),
	})
}

// RemoveRental godoc
// @Summary Remove a rental line
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param rentalId path int true "Rental ID"
// @Success 200 {object} models.Response
// @Router /cart/rental/{rentalId} [delete]
func (ctrl *CartController) RemoveRental(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	rentalID, _ := strconv.Atoi(c.Param("rentalId"))
	if rentalID <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid rental ID"})
		return
	}

	snapshot, selection, err := ctrl.Cart.RemoveRental(c.Request.Context(), user.ID, rentalID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item removed",
		"data":    services.CartView(snapshot, selection),
	})
}

// SelectLine godoc
// @Summary Mark one cart line in or out of the next checkout
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SelectLineRequest true "Line and desired state"
// @Success 200 {object} models.Response
// @Router /cart/select [put]
func (ctrl *CartController) SelectLine(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req models.SelectLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	selection, err := ctrl.Cart.Select(c.Request.Context(), user.ID, req.Kind, req.ItemID, *req.Selected)
	if err != nil {
		cartError(c, err)
		return
	}

	// Totals follow the selection; fetch without resetting it.
	snapshot, err := ctrl.Cart.Snapshot(c.Request.Context(), user.ID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    services.CartView(snapshot, selection),
	})
}

// SelectAll godoc
// @Summary Select or deselect every line of one kind
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SelectAllRequest true "Kind and desired state"
// @Success 200 {object} models.Response
// @Router /cart/select-all [put]
func (ctrl *CartController) SelectAll(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var req models.SelectAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	selection, err := ctrl.Cart.SelectAll(c.Request.Context(), user.ID, req.Kind, *req.Selected)
	if err != nil {
		cartError(c, err)
		return
	}

	snapshot, err := ctrl.Cart.Snapshot(c.Request.Context(), user.ID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data":    services.CartView(snapshot, selection),
	})
}
