package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hardware-store/models"
	"hardware-store/services"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
}

// CheckoutCart godoc
// @Summary Check out the selected cart lines
// @Description Submits only the selected lines; unselected lines remain in the cart
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.PaymentRequest true "Payment method and card details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CheckoutController) CheckoutCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(401, gin.H{"success": false, "message": "Unauthorized"})
		return
	}

	var payment models.PaymentRequest
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	confirmation, cart, err := ctrl.Checkout.Checkout(c.Request.Context(), user, payment)
	if err != nil {
		if errors.Is(err, services.ErrEmptySelection) {
			c.JSON(400, gin.H{"success": false, "message": "Select at least one item to check out"})
			return
		}
		cartError(c, err)
		return
	}

	data := gin.H{
		"orderId": confirmation.OrderID,
		"total":   confirmation.Total,
	}
	if cart != nil {
		data["cart"] = cart
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed",
		"data":    data,
	})
}
