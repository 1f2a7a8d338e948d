package models

import "github.com/shopspring/decimal"

type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	SubCategory string          `json:"subCategory,omitempty"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image,omitempty"`
}

// Tool is a rentable piece of equipment, priced per day.
type Tool struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}
