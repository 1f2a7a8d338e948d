package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hardware-store/backend"
	"hardware-store/models"
)

// AdminController proxies the management endpoints. Role checks happen
// in middleware; handlers only translate requests and relay results.
type AdminController struct {
	Backend *backend.Client
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, _ := strconv.Atoi(c.Param(name))
	if id <= 0 {
		c.JSON(400, gin.H{"success": false, "message": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// --- users ---

// ListUsers godoc
// @Summary List all users
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/users [get]
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctrl.Backend.FetchUsers(c.Request.Context())
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "data": users})
}

// GetUser godoc
// @Summary Get one user
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Router /admin/users/{id} [get]
func (ctrl *AdminController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := ctrl.Backend.FetchUser(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "User not found"})
		return
	}
	c.JSON(200, gin.H{"success": true, "data": user})
}

// UpdateUser godoc
// @Summary Update a user
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.Response
// @Router /admin/users/{id} [put]
func (ctrl *AdminController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	user, err := ctrl.Backend.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "User updated", "data": user})
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Response
// @Router /admin/users/{id} [delete]
func (ctrl *AdminController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Backend.DeleteUser(c.Request.Context(), id); err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "User deleted"})
}

// --- products ---

// CreateProduct godoc
// @Summary Create a product
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product fields"
// @Success 201 {object} models.Response
// @Router /admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	product, err := ctrl.Backend.CreateProduct(c.Request.Context(), req)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Product created", "data": product})
}

// UpdateProduct godoc
// @Summary Update a product
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.CreateProductRequest true "Product fields"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [put]
func (ctrl *AdminController) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	product, err := ctrl.Backend.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product updated", "data": product})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /admin/products/{id} [delete]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Backend.DeleteProduct(c.Request.Context(), id); err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product deleted"})
}

// --- tools ---

// CreateTool godoc
// @Summary Create a rentable tool
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateToolRequest true "Tool fields"
// @Success 201 {object} models.Response
// @Router /admin/tools [post]
func (ctrl *AdminController) CreateTool(c *gin.Context) {
	var req models.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	tool, err := ctrl.Backend.CreateTool(c.Request.Context(), req)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Tool created", "data": tool})
}

// UpdateTool godoc
// @Summary Update a tool
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Tool ID"
// @Param request body models.CreateToolRequest true "Tool fields"
// @Success 200 {object} models.Response
// @Router /admin/tools/{id} [put]
func (ctrl *AdminController) UpdateTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	tool, err := ctrl.Backend.UpdateTool(c.Request.Context(), id, req)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Tool updated", "data": tool})
}

// DeleteTool godoc
// @Summary Delete a tool
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Tool ID"
// @Success 200 {object} models.Response
// @Router /admin/tools/{id} [delete]
func (ctrl *AdminController) DeleteTool(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Backend.DeleteTool(c.Request.Context(), id); err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Tool deleted"})
}

// --- rentals ---

// ListRentals godoc
// @Summary List all rental records
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /admin/rentals [get]
func (ctrl *AdminController) ListRentals(c *gin.Context) {
	rentals, err := ctrl.Backend.FetchRentals(c.Request.Context())
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "data": rentals})
}

// CreateRental godoc
// @Summary Create a rental record
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateRentalRequest true "Rental fields"
// @Success 201 {object} models.Response
// @Router /admin/rentals [post]
func (ctrl *AdminController) CreateRental(c *gin.Context) {
	var req models.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	rental, err := ctrl.Backend.CreateRental(c.Request.Context(), req)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(201, gin.H{"success": true, "message": "Rental created", "data": rental})
}

// UpdateRental godoc
// @Summary Update a rental record
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Rental ID"
// @Param request body models.CreateRentalRequest true "Rental fields"
// @Success 200 {object} models.Response
// @Router /admin/rentals/{id} [put]
func (ctrl *AdminController) UpdateRental(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	rental, err := ctrl.Backend.UpdateRentalRecord(c.Request.Context(), id, req)
	if err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Rental updated", "data": rental})
}

// DeleteRental godoc
// @Summary Delete a rental record
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Rental ID"
// @Success 200 {object} models.Response
// @Router /admin/rentals/{id} [delete]
func (ctrl *AdminController) DeleteRental(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Backend.DeleteRental(c.Request.Context(), id); err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Rental deleted"})
}

// --- orders ---

// UpdateOrderStatus godoc
// @Summary Update an order's payment or delivery status
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New payment and/or delivery status"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id}/status [put]
func (ctrl *AdminController) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}
	if req.PaymentStatus == "" && req.DeliveryStatus == "" {
		c.JSON(400, gin.H{"success": false, "message": "Provide a payment or delivery status"})
		return
	}
	if req.PaymentStatus != "" && !models.ValidPaymentStatus(req.PaymentStatus) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid payment status"})
		return
	}
	if req.DeliveryStatus != "" && !models.ValidDeliveryStatus(req.DeliveryStatus) {
		c.JSON(400, gin.H{"success": false, "message": "Invalid delivery status"})
		return
	}
	if err := ctrl.Backend.UpdateOrderStatus(c.Request.Context(), id, req); err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Order status updated"})
}

// DeleteOrder godoc
// @Summary Delete an order
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Router /admin/orders/{id} [delete]
func (ctrl *AdminController) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Backend.DeleteOrder(c.Request.Context(), id); err != nil {
		cartError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Order deleted"})
}
