package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-store/backend"
	"hardware-store/models"
	"hardware-store/session"
)

func TestBuildCheckoutRequest_ProjectsSelectedLines(t *testing.T) {
	selection := models.Selection{
		Products: map[string]bool{"7-1": true, "7-2": false},
		Rentals:  map[string]bool{"7-3": true},
	}

	req, err := BuildCheckoutRequest(7, selection)
	require.NoError(t, err)

	require.Len(t, req.SelectedProducts, 1)
	require.NotNil(t, req.SelectedProducts[0].ProductID)
	assert.Equal(t, 1, *req.SelectedProducts[0].ProductID)
	assert.Nil(t, req.SelectedProducts[0].RentalID)
	assert.Equal(t, 7, req.SelectedProducts[0].UserID)

	require.Len(t, req.SelectedRentals, 1)
	require.NotNil(t, req.SelectedRentals[0].RentalID)
	assert.Equal(t, 3, *req.SelectedRentals[0].RentalID)
	assert.Nil(t, req.SelectedRentals[0].ProductID)
}

func TestBuildCheckoutRequest_EmptySelection(t *testing.T) {
	selection := models.Selection{
		Products: map[string]bool{"7-1": false},
		Rentals:  map[string]bool{},
	}

	_, err := BuildCheckoutRequest(7, selection)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestValidatePayment(t *testing.T) {
	cases := []struct {
		name    string
		payment models.PaymentRequest
		wantErr bool
	}{
		{"cash needs nothing", models.PaymentRequest{PaymentMethod: models.PaymentMethodCash}, false},
		{"valid card", models.PaymentRequest{
			PaymentMethod:  models.PaymentMethodCard,
			CardNumber:     "4111 1111 1111 1111",
			CardHolderName: "Suresh Varma",
			ExpiryMonth:    "12",
			ExpiryYear:     "2030",
			CVV:            "123",
		}, false},
		{"short card number", models.PaymentRequest{
			PaymentMethod:  models.PaymentMethodCard,
			CardNumber:     "4111",
			CardHolderName: "Suresh Varma",
			ExpiryMonth:    "12",
			ExpiryYear:     "2030",
			CVV:            "123",
		}, true},
		{"expired card", models.PaymentRequest{
			PaymentMethod:  models.PaymentMethodCard,
			CardNumber:     "4111111111111111",
			CardHolderName: "Suresh Varma",
			ExpiryMonth:    "01",
			ExpiryYear:     "2020",
			CVV:            "123",
		}, true},
		{"bad cvv", models.PaymentRequest{
			PaymentMethod:  models.PaymentMethodCard,
			CardNumber:     "4111111111111111",
			CardHolderName: "Suresh Varma",
			ExpiryMonth:    "12",
			ExpiryYear:     "2030",
			CVV:            "12",
		}, true},
		{"unknown method", models.PaymentRequest{PaymentMethod: "CRYPTO"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePayment(tc.payment)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckoutService_EmptySelectionNeverHitsBackend(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	bc := backend.New(srv.URL, 5*time.Second)
	store := session.NewMemoryStore(time.Hour)
	cart := NewCartService(bc, store)
	svc := NewCheckoutService(bc, cart, store, nil)

	user := models.User{ID: 7, Email: "s@example.com"}
	_, _, err := svc.Checkout(context.Background(), user, models.PaymentRequest{PaymentMethod: models.PaymentMethodCash})

	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Zero(t, hits.Load())
}

// Partial checkout: product A and the rental are selected, product B is
// not. The backend receives exactly the selected keys, and B is still
// in the cart the service returns.
func TestCheckoutService_PartialCheckout(t *testing.T) {
	fullCart := `{
		"products": [
			{"userId": 7, "productId": 1, "name": "Claw Hammer", "unitPrice": "250", "quantity": 2, "subtotal": "500"},
			{"userId": 7, "productId": 2, "name": "Wood Screws", "unitPrice": "40", "quantity": 5, "subtotal": "200"}
		],
		"rentals": [
			{"userId": 7, "rentalId": 3, "name": "Tile Cutter", "dailyRate": "1000", "quantity": 1,
			 "rentalStart": "2026-09-01", "rentalEnd": "2026-09-04", "subtotal": "3000"}
		]
	}`
	remainderCart := `{
		"products": [
			{"userId": 7, "productId": 2, "name": "Wood Screws", "unitPrice": "40", "quantity": 5, "subtotal": "200"}
		],
		"rentals": []
	}`

	var checkedOut atomic.Bool
	var submitted models.CheckoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/checkout"):
			require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
			checkedOut.Store(true)
			w.Write([]byte(`{"orderId": 42, "total": "4025"}`))
		case r.Method == http.MethodGet:
			if checkedOut.Load() {
				w.Write([]byte(remainderCart))
			} else {
				w.Write([]byte(fullCart))
			}
		default:
			w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()

	bc := backend.New(srv.URL, 5*time.Second)
	store := session.NewMemoryStore(time.Hour)
	cart := NewCartService(bc, store)
	svc := NewCheckoutService(bc, cart, store, nil)

	_, _, err := cart.LoadCart(context.Background(), 7)
	require.NoError(t, err)
	_, err = cart.Select(context.Background(), 7, "product", 2, false)
	require.NoError(t, err)

	user := models.User{ID: 7, Name: "Suresh", Email: "s@example.com"}
	confirmation, view, err := svc.Checkout(context.Background(), user, models.PaymentRequest{
		PaymentMethod: models.PaymentMethodCash,
	})
	require.NoError(t, err)

	assert.Equal(t, 42, confirmation.OrderID)
	assert.True(t, confirmation.Total.Equal(decimal.NewFromInt(4025)))

	// Only the selected lines went upstream.
	require.Len(t, submitted.SelectedProducts, 1)
	assert.Equal(t, 1, *submitted.SelectedProducts[0].ProductID)
	require.Len(t, submitted.SelectedRentals, 1)
	assert.Equal(t, 3, *submitted.SelectedRentals[0].RentalID)
	assert.Equal(t, "CASH", submitted.PaymentMethod)
	assert.Equal(t, "cash-on-delivery", submitted.PaymentDetails)

	// The unselected line survived and is re-selected for next time.
	require.NotNil(t, view)
	require.Len(t, view.Products, 1)
	assert.Equal(t, 2, view.Products[0].ProductID)
	assert.True(t, view.Selection.Products["7-2"])
}

func TestCheckoutService_CardDetailsAreMasked(t *testing.T) {
	var submitted models.CheckoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/checkout") {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
			w.Write([]byte(`{"orderId": 43, "total": "500"}`))
			return
		}
		w.Write([]byte(`{"products": [{"userId": 7, "productId": 1, "unitPrice": "250", "quantity": 2}], "rentals": []}`))
	}))
	defer srv.Close()

	bc := backend.New(srv.URL, 5*time.Second)
	store := session.NewMemoryStore(time.Hour)
	cart := NewCartService(bc, store)
	svc := NewCheckoutService(bc, cart, store, nil)

	_, _, err := cart.LoadCart(context.Background(), 7)
	require.NoError(t, err)

	user := models.User{ID: 7, Email: "s@example.com"}
	_, _, err = svc.Checkout(context.Background(), user, models.PaymentRequest{
		PaymentMethod:  models.PaymentMethodCard,
		CardNumber:     "4111 1111 1111 1111",
		CardHolderName: "Suresh Varma",
		ExpiryMonth:    "12",
		ExpiryYear:     "2030",
		CVV:            "123",
	})
	require.NoError(t, err)

	assert.Equal(t, "CARD", submitted.PaymentMethod)
	assert.Equal(t, "**** **** **** 1111", submitted.PaymentDetails)
	assert.Equal(t, "4111111111111111", submitted.CardNumber)
}
