package services

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"hardware-store/backend"
	"hardware-store/models"
	"hardware-store/session"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidDates    = errors.New("rental start must be before end")
	ErrEmptySelection  = errors.New("please select at least one item to checkout")
	ErrItemNotInCart   = errors.New("item is not in the cart")
)

// CartTaxRate is the cart-summary rate. The rental estimate screen
// uses its own 2% rate; the two are intentionally separate constants.
var CartTaxRate = decimal.NewFromFloat(0.15)

// CartService is the server-side cart store. The backend owns the cart;
// every mutation here is write-then-refetch, never a local patch.
type CartService struct {
	backend  *backend.Client
	sessions session.Store
}

func NewCartService(bc *backend.Client, store session.Store) *CartService {
	return &CartService{backend: bc, sessions: store}
}

// LoadCart fetches the user's cart and rebuilds the selection set
// wholesale (every current line selected), so keys for removed lines
// never survive a reload.
func (s *CartService) LoadCart(ctx context.Context, userID int) (models.CartSnapshot, models.Selection, error) {
	snapshot, err := s.backend.FetchCart(ctx, userID)
	if err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}

	selection := models.SelectionFor(snapshot)
	if err := s.sessions.SaveSelection(ctx, userID, selection); err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}
	return snapshot, selection, nil
}

// Snapshot fetches the cart without touching the selection set; used
// when a selection toggle needs fresh totals but must not reset the
// user's choices.
func (s *CartService) Snapshot(ctx context.Context, userID int) (models.CartSnapshot, error) {
	return s.backend.FetchCart(ctx, userID)
}

// Selection returns the user's current selection set, empty when no
// cart has been loaded in this session yet.
func (s *CartService) Selection(ctx context.Context, userID int) (models.Selection, error) {
	sel, err := s.sessions.GetSelection(ctx, userID)
	if errors.Is(err, session.ErrNotFound) {
		return models.Selection{Products: map[string]bool{}, Rentals: map[string]bool{}}, nil
	}
	return sel, err
}

func (s *CartService) AddProduct(ctx context.Context, userID, productID, quantity int) (models.CartSnapshot, models.Selection, error) {
	if quantity < 1 {
		return models.CartSnapshot{}, models.Selection{}, ErrInvalidQuantity
	}
	if err := s.backend.AddProductToCart(ctx, userID, productID, quantity); err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}
	return s.LoadCart(ctx, userID)
}

func (s *CartService) UpdateProductQuantity(ctx context.Context, userID, productID, quantity int) (models.CartSnapshot, models.Selection, error) {
	if quantity < 1 {
		return models.CartSnapshot{}, models.Selection{}, ErrInvalidQuantity
	}
	if err := s.backend.UpdateProductQuantity(ctx, userID, productID, quantity); err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}
	return s.LoadCart(ctx, userID)
}

func (s *CartService) UpdateRental(ctx context.Context, userID, rentalID int, upd models.UpdateRentalRequest) (models.CartSnapshot, models.Selection, error) {
	if upd.Quantity != nil && *upd.Quantity < 1 {
		return models.CartSnapshot{}, models.Selection{}, ErrInvalidQuantity
	}
	if upd.RentalStart != "" && upd.RentalEnd != "" && upd.RentalStart >= upd.RentalEnd {
		return models.CartSnapshot{}, models.Selection{}, ErrInvalidDates
	}
	if err := s.backend.UpdateRental(ctx, userID, rentalID, upd); err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}
	return s.LoadCart(ctx, userID)
}

func (s *CartService) RemoveProduct(ctx context.Context, userID, productID int) (models.CartSnapshot, models.Selection, error) {
	if err := s.backend.RemoveProduct(ctx, userID, productID); err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}
	return s.LoadCart(ctx, userID)
}

func (s *CartService) RemoveRental(ctx context.Context, userID, rentalID int) (models.CartSnapshot, models.Selection, error) {
	if err := s.backend.RemoveRental(ctx, userID, rentalID); err != nil {
		return models.CartSnapshot{}, models.Selection{}, err
	}
	return s.LoadCart(ctx, userID)
}

// Select toggles one cart line in or out of the next checkout. Keys
// not present in the current selection belong to removed lines and are
// rejected rather than resurrected.
func (s *CartService) Select(ctx context.Context, userID int, kind string, itemID int, selected bool) (models.Selection, error) {
	sel, err := s.Selection(ctx, userID)
	if err != nil {
		return models.Selection{}, err
	}

	key := models.LineKey(userID, itemID)
	target := sel.Products
	if kind == "rental" {
		target = sel.Rentals
	}
	if _, ok := target[key]; !ok {
		return models.Selection{}, ErrItemNotInCart
	}
	target[key] = selected

	if err := s.sessions.SaveSelection(ctx, userID, sel); err != nil {
		return models.Selection{}, err
	}
	return sel, nil
}

func (s *CartService) SelectAll(ctx context.Context, userID int, kind string, selected bool) (models.Selection, error) {
	sel, err := s.Selection(ctx, userID)
	if err != nil {
		return models.Selection{}, err
	}

	target := sel.Products
	if kind == "rental" {
		target = sel.Rentals
	}
	for key := range target {
		target[key] = selected
	}

	if err := s.sessions.SaveSelection(ctx, userID, sel); err != nil {
		return models.Selection{}, err
	}
	return sel, nil
}

// ComputeTotals derives the cart summary for the selected lines.
// Pure: same snapshot and selection always produce the same totals.
func ComputeTotals(snapshot models.CartSnapshot, selection models.Selection) models.Totals {
	subtotal := decimal.Zero
	for _, p := range snapshot.Products {
		if selection.Products[p.Key()] {
			subtotal = subtotal.Add(p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity))))
		}
	}
	for _, r := range snapshot.Rentals {
		if selection.Rentals[r.Key()] {
			subtotal = subtotal.Add(r.Subtotal)
		}
	}

	discount := checkoutDiscount(snapshot, selection)
	tax := subtotal.Mul(CartTaxRate)

	return models.Totals{
		SelectedItems: selection.SelectedCount(),
		Subtotal:      subtotal,
		Discount:      discount,
		Tax:           tax,
		Total:         subtotal.Sub(discount).Add(tax),
	}
}

// No discount scheme is active; the hook stays so promos can plug in.
func checkoutDiscount(models.CartSnapshot, models.Selection) decimal.Decimal {
	return decimal.Zero
}

// CartView assembles the cart page payload.
func CartView(snapshot models.CartSnapshot, selection models.Selection) models.CartView {
	return models.CartView{
		Products:  snapshot.Products,
		Rentals:   snapshot.Rentals,
		Selection: selection,
		Totals:    ComputeTotals(snapshot, selection),
	}
}

func logReloadFailure(userID int, err error) {
	log.Printf("cart reload for user %d failed: %v", userID, err)
}
