package models

import "github.com/shopspring/decimal"

const (
	OrderItemProduct = "PRODUCT"
	OrderItemRental  = "RENTAL"

	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentCOD     = "COD"
	PaymentSuccess = "SUCCESS"
	PaymentFailed  = "FAILED"

	DeliveryPending    = "PENDING"
	DeliveryProcessing = "PROCESSING"
	DeliveryShipped    = "SHIPPED"
	DeliveryDelivered  = "DELIVERED"
	DeliveryCancelled  = "CANCELLED"

	PaymentMethodCard = "CARD"
	PaymentMethodCash = "CASH"
)

// ValidPaymentStatus reports whether s is one of the payment states
// the back office may set.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentCOD, PaymentSuccess, PaymentFailed:
		return true
	}
	return false
}

// ValidDeliveryStatus reports whether s is one of the delivery states
// the back office may set.
func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryPending, DeliveryProcessing, DeliveryShipped, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

// Order is server-owned and read-only on this side; it is only ever
// rendered from backend responses.
type Order struct {
	OrderID         int             `json:"orderId"`
	UserID          int             `json:"userId"`
	UserName        string          `json:"userName,omitempty"`
	Items           []OrderItem     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	PaymentStatus   string          `json:"paymentStatus,omitempty"`
	DeliveryStatus  string          `json:"deliveryStatus,omitempty"`
	OrderDate       string          `json:"orderDate,omitempty"`
	DeliveryAddress string          `json:"deliveryAddress,omitempty"`
	TransactionID   string          `json:"transactionId,omitempty"`
}

type OrderItem struct {
	Type        string          `json:"type"`
	ProductID   *int            `json:"productId,omitempty"`
	RentalID    *int            `json:"rentalId,omitempty"`
	Name        string          `json:"name,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	RentalStart string          `json:"rentalStart,omitempty"`
	RentalEnd   string          `json:"rentalEnd,omitempty"`
	Status      string          `json:"status,omitempty"`
}
