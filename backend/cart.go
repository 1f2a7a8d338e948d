package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"hardware-store/models"
)

func (c *Client) FetchCart(ctx context.Context, userID int) (models.CartSnapshot, error) {
	var raw json.RawMessage
	if err := c.get(ctx, fmt.Sprintf("/api/cart/%d", userID), &raw); err != nil {
		return models.CartSnapshot{}, err
	}
	return NormalizeCart(raw)
}

func (c *Client) AddProductToCart(ctx context.Context, userID, productID, quantity int) error {
	body := map[string]interface{}{
		"userId":    userID,
		"productId": productID,
		"quantity":  quantity,
	}
	return c.post(ctx, "/api/cart/product/add", body, nil)
}

func (c *Client) AddRentalToCart(ctx context.Context, userID, rentalID, quantity int, rentalStart, rentalEnd string) error {
	body := map[string]interface{}{
		"userId":      userID,
		"rentalId":    rentalID,
		"quantity":    quantity,
		"rentalStart": rentalStart,
		"rentalEnd":   rentalEnd,
	}
	return c.post(ctx, "/api/cart/rental/add", body, nil)
}

func (c *Client) UpdateProductQuantity(ctx context.Context, userID, productID, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.put(ctx, fmt.Sprintf("/api/cart/product/%d/%d", userID, productID), body, nil)
}

func (c *Client) UpdateRental(ctx context.Context, userID, rentalID int, upd models.UpdateRentalRequest) error {
	return c.put(ctx, fmt.Sprintf("/api/cart/rental/%d/%d", userID, rentalID), upd, nil)
}

func (c *Client) RemoveProduct(ctx context.Context, userID, productID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/cart/product/%d/%d", userID, productID))
}

func (c *Client) RemoveRental(ctx context.Context, userID, rentalID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/cart/rental/%d/%d", userID, rentalID))
}

// rawConfirmation tolerates the order-id key drift across backend
// revisions.
type rawConfirmation struct {
	OrderID     int             `json:"orderId"`
	ID          int             `json:"id"`
	Total       decimal.Decimal `json:"total"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (c *Client) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.OrderConfirmation, error) {
	var raw rawConfirmation
	if err := c.post(ctx, fmt.Sprintf("/api/cart/%d/checkout", req.UserID), req, &raw); err != nil {
		return nil, err
	}

	conf := &models.OrderConfirmation{OrderID: raw.OrderID, Total: raw.Total}
	if conf.OrderID == 0 {
		conf.OrderID = raw.ID
	}
	if conf.Total.IsZero() {
		conf.Total = raw.TotalAmount
	}
	return conf, nil
}
