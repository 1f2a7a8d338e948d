package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token         string         `json:"token"`
	User          User           `json:"user"`
	PendingRental *PendingRental `json:"pendingRental,omitempty"`
}

// CartView is the cart page payload: the fresh snapshot, the current
// selection, and the totals derived from the two.
type CartView struct {
	Products  []ProductLine `json:"products"`
	Rentals   []RentalLine  `json:"rentals"`
	Selection Selection     `json:"selection"`
	Totals    Totals        `json:"totals"`
}
