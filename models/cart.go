package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductLine is a purchasable entry in a user's cart, owned by the
// (userId, productId) pair.
type ProductLine struct {
	UserID    int             `json:"userId"`
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Image     string          `json:"image,omitempty"`
}

func (p ProductLine) Key() string {
	return LineKey(p.UserID, p.ProductID)
}

// RentalLine is a tool booking in a user's cart, owned by the
// (userId, rentalId) pair. RentalEnd is exclusive and must be strictly
// after RentalStart. Dates travel as YYYY-MM-DD strings.
type RentalLine struct {
	UserID      int             `json:"userId"`
	RentalID    int             `json:"rentalId"`
	Name        string          `json:"name"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	Quantity    int             `json:"quantity"`
	RentalStart string          `json:"rentalStart"`
	RentalEnd   string          `json:"rentalEnd"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Image       string          `json:"image,omitempty"`
}

func (r RentalLine) Key() string {
	return LineKey(r.UserID, r.RentalID)
}

// CartSnapshot is the canonical view of a user's cart. It is fetched
// fresh from the hardware backend on every read and never patched
// locally; the backend is the single source of truth.
type CartSnapshot struct {
	Products []ProductLine `json:"products"`
	Rentals  []RentalLine  `json:"rentals"`
}

func (s CartSnapshot) Empty() bool {
	return len(s.Products) == 0 && len(s.Rentals) == 0
}

// LineKey builds the composite selection key for a cart line.
func LineKey(userID, itemID int) string {
	return fmt.Sprintf("%d-%d", userID, itemID)
}

// Selection marks which cart lines go into the next checkout. Products
// and rentals are tracked independently. It is rebuilt wholesale on
// every cart reload, so stale keys never outlive the lines they named.
type Selection struct {
	Products map[string]bool `json:"products"`
	Rentals  map[string]bool `json:"rentals"`
}

// SelectionFor builds the default selection for a snapshot with every
// line selected.
func SelectionFor(snapshot CartSnapshot) Selection {
	sel := Selection{
		Products: make(map[string]bool, len(snapshot.Products)),
		Rentals:  make(map[string]bool, len(snapshot.Rentals)),
	}
	for _, p := range snapshot.Products {
		sel.Products[p.Key()] = true
	}
	for _, r := range snapshot.Rentals {
		sel.Rentals[r.Key()] = true
	}
	return sel
}

func (s Selection) SelectedCount() int {
	count := 0
	for _, v := range s.Products {
		if v {
			count++
		}
	}
	for _, v := range s.Rentals {
		if v {
			count++
		}
	}
	return count
}

func (s Selection) IsEmpty() bool {
	return s.SelectedCount() == 0
}

// Totals is the derived cart summary for the selected lines.
type Totals struct {
	SelectedItems int             `json:"selectedItems"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
}

// CartKey identifies one cart line in a checkout request. Exactly one
// of ProductID / RentalID is set.
type CartKey struct {
	UserID    int  `json:"userId"`
	ProductID *int `json:"productId"`
	RentalID  *int `json:"rentalId"`
}

// CheckoutRequest is the payload submitted to the hardware backend.
// The backend removes exactly the submitted lines from the cart.
type CheckoutRequest struct {
	UserID           int       `json:"userId"`
	SelectedProducts []CartKey `json:"selectedProducts"`
	SelectedRentals  []CartKey `json:"selectedRentals"`
	PaymentMethod    string    `json:"paymentMethod"`
	PaymentDetails   string    `json:"paymentDetails,omitempty"`
	CardNumber       string    `json:"cardNumber,omitempty"`
	CardHolderName   string    `json:"cardHolderName,omitempty"`
	ExpiryMonth      string    `json:"expiryMonth,omitempty"`
	ExpiryYear       string    `json:"expiryYear,omitempty"`
	CVV              string    `json:"cvv,omitempty"`
}

// OrderConfirmation is what the backend reports for a successful
// checkout.
type OrderConfirmation struct {
	OrderID int             `json:"orderId"`
	Total   decimal.Decimal `json:"total"`
}
