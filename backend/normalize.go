package backend

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"hardware-store/models"
)

// rawCart tolerates the line-collection key drift seen across backend
// revisions: products|items|cartItems and rentals|rentalItems.
type rawCart struct {
	Products    []rawLine `json:"products"`
	Items       []rawLine `json:"items"`
	CartItems   []rawLine `json:"cartItems"`
	Rentals     []rawLine `json:"rentals"`
	RentalItems []rawLine `json:"rentalItems"`
}

type rawLine struct {
	UserID       int             `json:"userId"`
	ProductID    int             `json:"productId"`
	RentalID     int             `json:"rentalId"`
	ToolID       int             `json:"toolId"`
	Name         string          `json:"name"`
	ProductName  string          `json:"productName"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	DailyRate    decimal.Decimal `json:"dailyRate"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	RentalStart  string          `json:"rentalStart"`
	RentalEnd    string          `json:"rentalEnd"`
	Image        string          `json:"image"`
	ProductImage string          `json:"productImage"`
	ImageSrc     string          `json:"imageSrc"`
}

// NormalizeCart maps a raw backend cart payload onto the canonical
// snapshot. Subtotals missing upstream are recomputed as unitPrice
// times quantity.
func NormalizeCart(data []byte) (models.CartSnapshot, error) {
	var raw rawCart
	if err := json.Unmarshal(data, &raw); err != nil {
		return models.CartSnapshot{}, err
	}

	productLines := raw.Products
	if len(productLines) == 0 {
		productLines = raw.Items
	}
	if len(productLines) == 0 {
		productLines = raw.CartItems
	}

	rentalLines := raw.Rentals
	if len(rentalLines) == 0 {
		rentalLines = raw.RentalItems
	}

	snapshot := models.CartSnapshot{
		Products: make([]models.ProductLine, 0, len(productLines)),
		Rentals:  make([]models.RentalLine, 0, len(rentalLines)),
	}

	for _, l := range productLines {
		subtotal := l.Subtotal
		if subtotal.IsZero() {
			subtotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
		}
		snapshot.Products = append(snapshot.Products, models.ProductLine{
			UserID:    l.UserID,
			ProductID: l.ProductID,
			Name:      lineName(l),
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  subtotal,
			Image:     lineImage(l),
		})
	}

	for _, l := range rentalLines {
		rate := l.DailyRate
		if rate.IsZero() {
			rate = l.UnitPrice
		}
		rentalID := l.RentalID
		if rentalID == 0 {
			rentalID = l.ToolID
		}
		snapshot.Rentals = append(snapshot.Rentals, models.RentalLine{
			UserID:      l.UserID,
			RentalID:    rentalID,
			Name:        lineName(l),
			DailyRate:   rate,
			Quantity:    l.Quantity,
			RentalStart: l.RentalStart,
			RentalEnd:   l.RentalEnd,
			Subtotal:    l.Subtotal,
			Image:       lineImage(l),
		})
	}

	return snapshot, nil
}

func lineName(l rawLine) string {
	if l.ProductName != "" {
		return l.ProductName
	}
	return l.Name
}

func lineImage(l rawLine) string {
	if l.Image != "" {
		return l.Image
	}
	if l.ProductImage != "" {
		return l.ProductImage
	}
	return l.ImageSrc
}
