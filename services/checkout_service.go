package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"hardware-store/backend"
	"hardware-store/models"
	"hardware-store/session"
	"hardware-store/utils"
)

// CheckoutService submits the selected subset of the cart to the
// backend. The backend removes exactly the submitted lines; everything
// unselected stays in the cart for a later checkout.
type CheckoutService struct {
	backend  *backend.Client
	cart     *CartService
	sessions session.Store
	mailer   *EmailService
}

// NewCheckoutService takes a nil mailer when SMTP is not configured;
// confirmation emails are best-effort either way.
func NewCheckoutService(bc *backend.Client, cart *CartService, store session.Store, mailer *EmailService) *CheckoutService {
	return &CheckoutService{backend: bc, cart: cart, sessions: store, mailer: mailer}
}

// BuildCheckoutRequest projects the selection set into the backend
// payload: one entry per selected line, with exactly one of productId
// or rentalId set.
func BuildCheckoutRequest(userID int, selection models.Selection) (models.CheckoutRequest, error) {
	if selection.IsEmpty() {
		return models.CheckoutRequest{}, ErrEmptySelection
	}

	req := models.CheckoutRequest{
		UserID:           userID,
		SelectedProducts: []models.CartKey{},
		SelectedRentals:  []models.CartKey{},
	}

	for key, selected := range selection.Products {
		if !selected {
			continue
		}
		productID, err := itemIDFromKey(key)
		if err != nil {
			continue
		}
		id := productID
		req.SelectedProducts = append(req.SelectedProducts, models.CartKey{UserID: userID, ProductID: &id})
	}

	for key, selected := range selection.Rentals {
		if !selected {
			continue
		}
		rentalID, err := itemIDFromKey(key)
		if err != nil {
			continue
		}
		id := rentalID
		req.SelectedRentals = append(req.SelectedRentals, models.CartKey{UserID: userID, RentalID: &id})
	}

	if len(req.SelectedProducts) == 0 && len(req.SelectedRentals) == 0 {
		return models.CheckoutRequest{}, ErrEmptySelection
	}
	return req, nil
}

func itemIDFromKey(key string) (int, error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, errors.New("malformed selection key")
	}
	return strconv.Atoi(parts[1])
}

// ValidatePayment format-checks the payment capture before anything
// goes over the wire. CASH needs no details.
func ValidatePayment(payment models.PaymentRequest) error {
	if payment.PaymentMethod == models.PaymentMethodCash {
		return nil
	}
	if payment.PaymentMethod != models.PaymentMethodCard {
		return errors.New("unsupported payment method")
	}

	if !utils.ValidateCardNumber(payment.CardNumber) {
		return errors.New("invalid card number (must be 16 digits)")
	}
	if strings.TrimSpace(payment.CardHolderName) == "" {
		return errors.New("card holder name is required")
	}
	if !utils.ValidateExpiry(payment.ExpiryMonth, payment.ExpiryYear) {
		return errors.New("invalid or expired card")
	}
	if !utils.ValidateCVV(payment.CVV) {
		return errors.New("invalid CVV (3 or 4 digits)")
	}
	return nil
}

// Checkout validates the selection and payment, submits, and reloads
// the cart so the response reflects the partial state the backend left
// behind. A successful checkout whose reload fails still reports the
// order; the returned cart view is nil in that case.
func (s *CheckoutService) Checkout(ctx context.Context, user models.User, payment models.PaymentRequest) (*models.OrderConfirmation, *models.CartView, error) {
	selection, err := s.cart.Selection(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	req, err := BuildCheckoutRequest(user.ID, selection)
	if err != nil {
		return nil, nil, err
	}
	if err := ValidatePayment(payment); err != nil {
		return nil, nil, err
	}

	req.PaymentMethod = payment.PaymentMethod
	if payment.PaymentMethod == models.PaymentMethodCard {
		req.PaymentDetails = utils.MaskCardNumber(payment.CardNumber)
		req.CardNumber = strings.ReplaceAll(payment.CardNumber, " ", "")
		req.CardHolderName = payment.CardHolderName
		req.ExpiryMonth = payment.ExpiryMonth
		req.ExpiryYear = payment.ExpiryYear
		req.CVV = payment.CVV
	} else {
		req.PaymentDetails = "cash-on-delivery"
	}

	confirmation, err := s.backend.Checkout(ctx, req)
	if err != nil {
		// Cart is untouched upstream on failure; nothing to reload.
		return nil, nil, err
	}

	if s.mailer != nil && user.Email != "" {
		if err := s.mailer.SendOrderConfirmationEmail(user.Email, user.Name, confirmation.OrderID, confirmation.Total); err != nil {
			log.Printf("order confirmation email for order %d failed: %v", confirmation.OrderID, err)
		}
	}

	snapshot, freshSelection, err := s.cart.LoadCart(ctx, user.ID)
	if err != nil {
		logReloadFailure(user.ID, err)
		return confirmation, nil, nil
	}

	view := CartView(snapshot, freshSelection)
	return confirmation, &view, nil
}
