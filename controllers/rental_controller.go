package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"hardware-store/models"
	"hardware-store/services"
)

type RentalController struct {
	Rentals *services.RentalService
	Catalog *services.CatalogService
}

func rentalValidationError(err error) bool {
	return errors.Is(err, services.ErrDatesRequired) ||
		errors.Is(err, services.ErrStartInPast) ||
		errors.Is(err, services.ErrEndNotAfterStart) ||
		errors.Is(err, services.ErrRentalQuantityCap)
}

// EstimateRental godoc
// @Summary Price a rental before booking
// @Description Computes days, delivery, insurance, and tax for a tool over a date range
// @Tags Rentals
// @Produce json
// @Param toolId path int true "Tool ID"
// @Param rentalStart query string true "Start date (YYYY-MM-DD)"
// @Param rentalEnd query string true "End date (YYYY-MM-DD)"
// @Param quantity query int false "Quantity (default 1)"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /tools/{toolId}/estimate [get]
func (ctrl *RentalController) EstimateRental(c *gin.Context) {
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

	quantity := 1
	if q := c.Query("quantity"); q != "" {
		quantity, _ = strconv.Atoi(q)
		if quantity < 1 {
			quantity = 1
		}
	}

	estimate, err := services.Estimate(tool.DailyRate, c.Query("rentalStart"), c.Query("rentalEnd"), quantity)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"data": gin.H{
			"tool":     tool,
			"estimate": estimate,
		},
	})
}

// BookRental godoc
// @Summary Book a tool rental into the cart
// @Description Anonymous bookings are stashed and replayed after login via the returned intentId
// @Tags Rentals
// @Accept json
// @Produce json
// @Param request body models.BookRentalRequest true "Tool, quantity, and date range"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /rentals/book [post]
func (ctrl *RentalController) BookRental(c *gin.Context) {
	var req models.BookRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	user, ok := currentUser(c)
	if !ok {
		// Stash the attempt so login can pre-fill the form.
		intentID, err := ctrl.Rentals.StashIntent(c.Request.Context(), req)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Could not save your booking"})
			return
		}
		c.JSON(401, gin.H{
			"success":  false,
			"message":  services.ErrLoginRequired.Error(),
			"intentId": intentID,
			"redirect": "/login",
		})
		return
	}

	snapshot, selection, err := ctrl.Rentals.Book(c.Request.Context(), user.ID, req)
	if err != nil {
		if rentalValidationError(err) {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		cartError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Rental added to cart",
		"data":    services.CartView(snapshot, selection),
	})
}

// PendingRental godoc
// @Summary Fetch a stashed anonymous booking
// @Description One-shot: the intent is discarded on read
// @Tags Rentals
// @Produce json
// @Param intentId path string true "Intent ID from an anonymous booking attempt"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /rentals/pending/{intentId} [get]
func (ctrl *RentalController) PendingRental(c *gin.Context) {
	intent, err := ctrl.Rentals.TakeIntent(c.Request.Context(), c.Param("intentId"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": err.Error()})
		return
	}
	if intent == nil {
		c.JSON(404, gin.H{"success": false, "message": "No pending rental"})
		return
	}

	c.JSON(200, gin.H{"success": true, "data": intent})
}
