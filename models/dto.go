package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address" binding:"omitempty"`
	Phone    string `json:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	// IntentID resumes a rental booking that was stashed before the
	// login redirect.
	IntentID string `json:"intentId" binding:"omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type AddProductRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateRentalRequest carries a partial rental-line update; nil/empty
// fields are left untouched by the backend.
type UpdateRentalRequest struct {
	Quantity    *int   `json:"quantity,omitempty"`
	RentalStart string `json:"rentalStart,omitempty"`
	RentalEnd   string `json:"rentalEnd,omitempty"`
}

type SelectLineRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=product rental"`
	ItemID   int    `json:"itemId" binding:"required"`
	Selected *bool  `json:"selected" binding:"required"`
}

type SelectAllRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=product rental"`
	Selected *bool  `json:"selected" binding:"required"`
}

// PaymentRequest is the payment capture step of checkout. Card fields
// are format-validated only; no gateway is involved.
type PaymentRequest struct {
	PaymentMethod  string `json:"paymentMethod" binding:"required,oneof=CARD CASH"`
	CardNumber     string `json:"cardNumber"`
	CardHolderName string `json:"cardHolderName"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CVV            string `json:"cvv"`
}

type BookRentalRequest struct {
	ToolID      int    `json:"toolId" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	RentalStart string `json:"rentalStart" binding:"required"`
	RentalEnd   string `json:"rentalEnd" binding:"required"`
	ReturnTo    string `json:"returnTo" binding:"omitempty"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	SubCategory string          `json:"subCategory"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image"`
}

type CreateToolRequest struct {
	Name        string          `json:"name" binding:"required"`
	DailyRate   decimal.Decimal `json:"dailyRate" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Available   bool            `json:"available"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

type CreateRentalRequest struct {
	UserID    int    `json:"userId" binding:"required"`
	ToolID    int    `json:"toolId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type UpdateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateOrderStatusRequest carries the back-office status change; at
// least one of the two fields must be set, each validated against the
// Payment*/Delivery* states.
type UpdateOrderStatusRequest struct {
	PaymentStatus  string `json:"paymentStatus" binding:"omitempty"`
	DeliveryStatus string `json:"deliveryStatus" binding:"omitempty"`
}
