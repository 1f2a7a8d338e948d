package models

import "github.com/shopspring/decimal"

// Rental is a confirmed tool booking record, managed by the admin
// screens independently of the cart flow.
type Rental struct {
	ID        int             `json:"id"`
	UserID    int             `json:"userId"`
	ToolID    int             `json:"toolId"`
	Quantity  int             `json:"quantity"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	TotalCost decimal.Decimal `json:"totalCost"`
	Status    string          `json:"status,omitempty"`
}

// RentalEstimate is the price breakdown shown on the tool detail page
// before a booking is added to the cart. The 2% tax here is a property
// of the rental estimate screen and is not the cart summary rate.
type RentalEstimate struct {
	Days      int             `json:"days"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Delivery  decimal.Decimal `json:"delivery"`
	Insurance decimal.Decimal `json:"insurance"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
}
