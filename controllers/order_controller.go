package controllers

import (
	"github.com/gin-gonic/gin"

	"hardware-store/backend"
)

type OrderController struct {
	Backend *backend.Client
}

// GetOrders godoc
// @Summary Order history for the logged-in user
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	orders, err := ctrl.Backend.FetchOrders(c.Request.Context(), user.ID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": orders})
}

// GetMyRentals godoc
// @Summary Rental history for the logged-in user
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /rentals [get]
func (ctrl *OrderController) GetMyRentals(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	rentals, err := ctrl.Backend.FetchRentalsByUser(c.Request.Context(), user.ID)
	if err != nil {
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": rentals})
}
