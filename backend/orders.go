package backend

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"hardware-store/models"
)

// rawOrder reconciles the order shapes seen across backend revisions:
// product items arrive as items|orderItems, rental bookings as a
// separate rentalOrders collection, totals as total|totalAmount.
type rawOrder struct {
	OrderID         int              `json:"orderId"`
	ID              int              `json:"id"`
	UserID          int              `json:"userId"`
	UserName        string           `json:"userName"`
	Items           []rawOrderItem   `json:"items"`
	OrderItems      []rawOrderItem   `json:"orderItems"`
	RentalOrders    []rawRentalOrder `json:"rentalOrders"`
	Total           decimal.Decimal  `json:"total"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	PaymentStatus   string           `json:"paymentStatus"`
	Status          string           `json:"status"`
	DeliveryStatus  string           `json:"deliveryStatus"`
	OrderDate       string           `json:"orderDate"`
	DeliveryAddress string           `json:"deliveryAddress"`
	TransactionID   string           `json:"transactionId"`
}

type rawOrderItem struct {
	Type        string          `json:"type"`
	ProductID   int             `json:"productId"`
	RentalID    int             `json:"rentalId"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	RentalStart string          `json:"rentalStart"`
	RentalEnd   string          `json:"rentalEnd"`
}

type rawRentalOrder struct {
	RentalOrderID int             `json:"rentalOrderId"`
	ToolID        int             `json:"toolId"`
	Quantity      int             `json:"quantity"`
	RentalStart   string          `json:"rentalStart"`
	RentalEnd     string          `json:"rentalEnd"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Status        string          `json:"status"`
}

func (r rawOrder) toOrder() models.Order {
	order := models.Order{
		OrderID:         r.OrderID,
		UserID:          r.UserID,
		UserName:        r.UserName,
		Total:           r.Total,
		PaymentStatus:   r.PaymentStatus,
		DeliveryStatus:  r.DeliveryStatus,
		OrderDate:       r.OrderDate,
		DeliveryAddress: r.DeliveryAddress,
		TransactionID:   r.TransactionID,
	}
	if order.OrderID == 0 {
		order.OrderID = r.ID
	}
	if order.Total.IsZero() {
		order.Total = r.TotalAmount
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = r.Status
	}

	items := r.Items
	if len(items) == 0 {
		items = r.OrderItems
	}
	for _, it := range items {
		item := models.OrderItem{
			Type:        it.Type,
			Name:        it.Name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
			RentalStart: it.RentalStart,
			RentalEnd:   it.RentalEnd,
		}
		if item.Type == "" {
			item.Type = models.OrderItemProduct
		}
		if it.ProductID != 0 {
			id := it.ProductID
			item.ProductID = &id
		}
		if it.RentalID != 0 {
			id := it.RentalID
			item.RentalID = &id
			item.Type = models.OrderItemRental
		}
		order.Items = append(order.Items, item)
	}

	for _, ro := range r.RentalOrders {
		toolID := ro.ToolID
		order.Items = append(order.Items, models.OrderItem{
			Type:        models.OrderItemRental,
			RentalID:    &toolID,
			Quantity:    ro.Quantity,
			Subtotal:    ro.TotalCost,
			RentalStart: ro.RentalStart,
			RentalEnd:   ro.RentalEnd,
			Status:      ro.Status,
		})
	}

	return order
}

func (c *Client) FetchOrders(ctx context.Context, userID int) ([]models.Order, error) {
	var raws []rawOrder
	if err := c.get(ctx, fmt.Sprintf("/api/orders/%d", userID), &raws); err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(raws))
	for _, r := range raws {
		orders = append(orders, r.toOrder())
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int, req models.UpdateOrderStatusRequest) error {
	return c.put(ctx, fmt.Sprintf("/api/orders/%d/status", orderID), req, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, orderID int) error {
	return c.delete(ctx, fmt.Sprintf("/api/orders/%d", orderID))
}

func (c *Client) FetchRentals(ctx context.Context) ([]models.Rental, error) {
	var rentals []models.Rental
	if err := c.get(ctx, "/api/rentals", &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (c *Client) FetchRentalsByUser(ctx context.Context, userID int) ([]models.Rental, error) {
	var rentals []models.Rental
	if err := c.get(ctx, fmt.Sprintf("/api/rentals/user/%d", userID), &rentals); err != nil {
		return nil, err
	}
	return rentals, nil
}

func (c *Client) CreateRental(ctx context.Context, req models.CreateRentalRequest) (*models.Rental, error) {
	var rental models.Rental
	if err := c.post(ctx, "/api/rentals", req, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

func (c *Client) UpdateRentalRecord(ctx context.Context, id int, req models.CreateRentalRequest) (*models.Rental, error) {
	var rental models.Rental
	if err := c.put(ctx, fmt.Sprintf("/api/rentals/%d", id), req, &rental); err != nil {
		return nil, err
	}
	return &rental, nil
}

func (c *Client) DeleteRental(ctx context.Context, id int) error {
	return c.delete(ctx, fmt.Sprintf("/api/rentals/%d", id))
}
