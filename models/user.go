package models

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == "ADMIN"
}

// PendingRental is a stashed booking intent for a user who tried to
// rent a tool while logged out. It is replayed into the booking form
// after login, exactly as entered.
type PendingRental struct {
	ToolID      int    `json:"toolId"`
	Quantity    int    `json:"quantity"`
	RentalStart string `json:"rentalStart"`
	RentalEnd   string `json:"rentalEnd"`
	ReturnTo    string `json:"returnTo,omitempty"`
}
