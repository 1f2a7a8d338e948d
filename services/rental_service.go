package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hardware-store/backend"
	"hardware-store/models"
	"hardware-store/session"
)

var (
	ErrLoginRequired     = errors.New("please log in to rent tools")
	ErrDatesRequired     = errors.New("please select start and end dates")
	ErrStartInPast       = errors.New("start date cannot be in the past")
	ErrEndNotAfterStart  = errors.New("end date must be after start date")
	ErrRentalQuantityCap = errors.New("rental quantity must be between 1 and 5")
)

const (
	dateLayout        = "2006-01-02"
	maxRentalQuantity = 5
)

// Rental estimate fees. The 2% tax is the detail-page estimate rate
// and deliberately not the cart's 15% summary rate.
var (
	rentalDeliveryFee   = decimal.NewFromInt(1500)
	rentalInsuranceRate = decimal.NewFromFloat(0.05)
	rentalTaxRate       = decimal.NewFromFloat(0.02)
)

type RentalService struct {
	backend  *backend.Client
	cart     *CartService
	sessions session.Store
}

func NewRentalService(bc *backend.Client, cart *CartService, store session.Store) *RentalService {
	return &RentalService{backend: bc, cart: cart, sessions: store}
}

// RentalDays counts whole days in the [start, end) window, minimum 1.
func RentalDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// Estimate computes the detail-page price breakdown: daily rate times
// days times quantity, a flat delivery fee whenever something is
// rented, 5% insurance, and 2% tax.
func Estimate(dailyRate decimal.Decimal, rentalStart, rentalEnd string, quantity int) (models.RentalEstimate, error) {
	start, err := time.Parse(dateLayout, rentalStart)
	if err != nil {
		return models.RentalEstimate{}, ErrDatesRequired
	}
	end, err := time.Parse(dateLayout, rentalEnd)
	if err != nil {
		return models.RentalEstimate{}, ErrDatesRequired
	}

	days := RentalDays(start, end)
	subtotal := dailyRate.Mul(decimal.NewFromInt(int64(days))).Mul(decimal.NewFromInt(int64(quantity)))

	delivery := decimal.Zero
	if subtotal.GreaterThan(decimal.Zero) {
		delivery = rentalDeliveryFee
	}
	insurance := subtotal.Mul(rentalInsuranceRate).Round(0)
	tax := subtotal.Mul(rentalTaxRate).Round(0)

	return models.RentalEstimate{
		Days:      days,
		Subtotal:  subtotal,
		Delivery:  delivery,
		Insurance: insurance,
		Tax:       tax,
		Total:     subtotal.Add(delivery).Add(insurance).Add(tax),
	}, nil
}

// ValidateBooking blocks a booking before any backend call: dates
// present and ordered, start not in the past, quantity within the UI
// cap of 5.
func ValidateBooking(req models.BookRentalRequest) error {
	if req.RentalStart == "" || req.RentalEnd == "" {
		return ErrDatesRequired
	}
	if _, err := time.Parse(dateLayout, req.RentalStart); err != nil {
		return ErrDatesRequired
	}
	if _, err := time.Parse(dateLayout, req.RentalEnd); err != nil {
		return ErrDatesRequired
	}

	today := time.Now().Format(dateLayout)
	if req.RentalStart < today {
		return ErrStartInPast
	}
	if req.RentalEnd <= req.RentalStart {
		return ErrEndNotAfterStart
	}
	if req.Quantity < 1 || req.Quantity > maxRentalQuantity {
		return ErrRentalQuantityCap
	}
	return nil
}

// Book adds a rental line to the user's cart and returns the fresh
// cart. Validation failures never reach the backend.
func (s *RentalService) Book(ctx context.Context, userID int, req models.BookRentalRequest) (models.CartSnapshot, models.Selection, error) {
	if err := ValidateBooking(req); err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}
	if err := s.backend.AddRentalToCart(ctx, userID, req.ToolID, req.Quantity, req.RentalStart, req.RentalEnd); err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}
	return s.cart.LoadCart(ctx, userID)
}

// StashIntent records a booking attempted while logged out so it can
// pre-fill the form after login, exactly as entered.
func (s *RentalService) StashIntent(ctx context.Context, req models.BookRentalRequest) (string, error) {
	intentID := uuid.NewString()
	intent := models.PendingRental{
		ToolID:      req.ToolID,
		Quantity:    req.Quantity,
		RentalStart: req.RentalStart,
		RentalEnd:   req.RentalEnd,
		ReturnTo:    req.ReturnTo,
	}
	if err := s.sessions.SavePendingRental(ctx, intentID, intent); err != nil {
		return "", err
	}
	return intentID, nil
}

// TakeIntent retrieves a stashed booking intent once; it is discarded
// on read.
func (s *RentalService) TakeIntent(ctx context.Context, intentID string) (*models.PendingRental, error) {
	intent, err := s.sessions.TakePendingRental(ctx, intentID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return intent, nil
}
