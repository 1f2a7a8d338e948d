package services

import (
	"context"
	"net/http"
	"net/http/httptest"
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

// fakeBackend serves a canned cart payload and counts every request so
// tests can assert that validation failures never reach the wire.
func fakeBackend(t *testing.T, cartJSON string) (*backend.Client, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cartJSON))
	}))
	t.Cleanup(srv.Close)
	return backend.New(srv.URL, 5*time.Second), &hits
}

const twoLineCart = `{
	"products": [
		{"userId": 7, "productId": 1, "name": "Claw Hammer", "unitPrice": "250", "quantity": 2, "subtotal": "500"},
		{"userId": 7, "productId": 2, "name": "Wood Screws", "unitPrice": "40", "quantity": 5, "subtotal": "200"}
	],
	"rentals": [
		{"userId": 7, "rentalId": 3, "name": "Tile Cutter", "dailyRate": "1000", "quantity": 1,
		 "rentalStart": "2026-09-01", "rentalEnd": "2026-09-04", "subtotal": "3000"}
	]
}`

func TestCartService_LoadCart_SelectsEverything(t *testing.T) {
	bc, _ := fakeBackend(t, twoLineCart)
	svc := NewCartService(bc, session.NewMemoryStore(time.Hour))

	snapshot, sel, err := svc.LoadCart(context.Background(), 7)
	require.NoError(t, err)

	assert.Len(t, snapshot.Products, 2)
	assert.Len(t, snapshot.Rentals, 1)
	assert.True(t, sel.Products["7-1"])
	assert.True(t, sel.Products["7-2"])
	assert.True(t, sel.Rentals["7-3"])
	assert.Equal(t, 3, sel.SelectedCount())
}

func TestCartService_LoadCart_DropsStaleSelectionKeys(t *testing.T) {
	bc, _ := fakeBackend(t, twoLineCart)
	store := session.NewMemoryStore(time.Hour)
	svc := NewCartService(bc, store)

	// A key for a line that no longer exists in the cart.
	require.NoError(t, store.SaveSelection(context.Background(), 7, models.Selection{
		Products: map[string]bool{"7-99": true},
		Rentals:  map[string]bool{},
	}))

	_, sel, err := svc.LoadCart(context.Background(), 7)
	require.NoError(t, err)

	_, stale := sel.Products["7-99"]
	assert.False(t, stale)
	assert.True(t, sel.Products["7-1"])
}

func TestCartService_AddProduct_RejectsBadQuantityBeforeNetwork(t *testing.T) {
	bc, hits := fakeBackend(t, twoLineCart)
	svc := NewCartService(bc, session.NewMemoryStore(time.Hour))

	_, _, err := svc.AddProduct(context.Background(), 7, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Zero(t, hits.Load())

	_, _, err = svc.UpdateProductQuantity(context.Background(), 7, 1, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Zero(t, hits.Load())
}

func TestCartService_UpdateRental_RejectsBadDatesBeforeNetwork(t *testing.T) {
	bc, hits := fakeBackend(t, twoLineCart)
	svc := NewCartService(bc, session.NewMemoryStore(time.Hour))

	_, _, err := svc.UpdateRental(context.Background(), 7, 3, models.UpdateRentalRequest{
		RentalStart: "2026-09-04",
		RentalEnd:   "2026-09-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDates)

	_, _, err = svc.UpdateRental(context.Background(), 7, 3, models.UpdateRentalRequest{
		RentalStart: "2026-09-01",
		RentalEnd:   "2026-09-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDates)
	assert.Zero(t, hits.Load())
}

func TestCartService_Select_TogglesOneLine(t *testing.T) {
	bc, _ := fakeBackend(t, twoLineCart)
	svc := NewCartService(bc, session.NewMemoryStore(time.Hour))

	_, _, err := svc.LoadCart(context.Background(), 7)
	require.NoError(t, err)

	sel, err := svc.Select(context.Background(), 7, "product", 2, false)
	require.NoError(t, err)
	assert.True(t, sel.Products["7-1"])
	assert.False(t, sel.Products["7-2"])
	assert.True(t, sel.Rentals["7-3"])

	// The toggle persists across reads.
	sel, err = svc.Selection(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, sel.Products["7-2"])
}

func TestCartService_Select_RejectsUnknownLine(t *testing.T) {
	bc, _ := fakeBackend(t, twoLineCart)
	svc := NewCartService(bc, session.NewMemoryStore(time.Hour))

	_, _, err := svc.LoadCart(context.Background(), 7)
	require.NoError(t, err)

	_, err = svc.Select(context.Background(), 7, "product", 99, true)
	assert.ErrorIs(t, err, ErrItemNotInCart)
}

func TestCartService_SelectAll_DeselectsOneKindOnly(t *testing.T) {
	bc, _ := fakeBackend(t, twoLineCart)
	svc := NewCartService(bc, session.NewMemoryStore(time.Hour))

	_, _, err := svc.LoadCart(context.Background(), 7)
	require.NoError(t, err)

	sel, err := svc.SelectAll(context.Background(), 7, "product", false)
	require.NoError(t, err)
	assert.False(t, sel.Products["7-1"])
	assert.False(t, sel.Products["7-2"])
	assert.True(t, sel.Rentals["7-3"])
}

// Add-then-remove round trip: the cart's subtotal ends up exactly
// where it started.
func TestCartService_AddThenRemoveRestoresSubtotal(t *testing.T) {
	baseCart := `{
		"products": [
			{"userId": 7, "productId": 1, "name": "Claw Hammer", "unitPrice": "250", "quantity": 2, "subtotal": "500"}
		],
		"rentals": []
	}`
	withExtraLine := `{
		"products": [
			{"userId": 7, "productId": 1, "name": "Claw Hammer", "unitPrice": "250", "quantity": 2, "subtotal": "500"},
			{"userId": 7, "productId": 2, "name": "Wood Screws", "unitPrice": "40", "quantity": 5, "subtotal": "200"}
		],
		"rentals": []
	}`

	var hasExtra atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			hasExtra.Store(true)
			w.Write([]byte(`{}`))
		case http.MethodDelete:
			hasExtra.Store(false)
			w.Write([]byte(`{}`))
		default:
			if hasExtra.Load() {
				w.Write([]byte(withExtraLine))
			} else {
				w.Write([]byte(baseCart))
			}
		}
	}))
	defer srv.Close()

	bc := backend.New(srv.URL, 5*time.Second)
	svc := NewCartService(bc, session.NewMemoryStore(time.Hour))

	snapshot, sel, err := svc.LoadCart(context.Background(), 7)
	require.NoError(t, err)
	before := ComputeTotals(snapshot, sel)

	snapshot, sel, err = svc.AddProduct(context.Background(), 7, 2, 5)
	require.NoError(t, err)
	during := ComputeTotals(snapshot, sel)
	assert.True(t, during.Subtotal.GreaterThan(before.Subtotal))

	snapshot, sel, err = svc.RemoveProduct(context.Background(), 7, 2)
	require.NoError(t, err)
	after := ComputeTotals(snapshot, sel)

	assert.True(t, after.Subtotal.Equal(before.Subtotal), "subtotal %s != %s", after.Subtotal, before.Subtotal)
	assert.True(t, after.Total.Equal(before.Total))
	assert.Equal(t, before.SelectedItems, after.SelectedItems)
}

func TestComputeTotals_SelectedSubsetOnly(t *testing.T) {
	snapshot := models.CartSnapshot{
		Products: []models.ProductLine{
			{UserID: 7, ProductID: 1, UnitPrice: decimal.NewFromInt(250), Quantity: 2},
			{UserID: 7, ProductID: 2, UnitPrice: decimal.NewFromInt(40), Quantity: 5},
		},
		Rentals: []models.RentalLine{
			{UserID: 7, RentalID: 3, Subtotal: decimal.NewFromInt(3000)},
		},
	}
	selection := models.Selection{
		Products: map[string]bool{"7-1": true, "7-2": false},
		Rentals:  map[string]bool{"7-3": true},
	}

	totals := ComputeTotals(snapshot, selection)

	assert.Equal(t, 2, totals.SelectedItems)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(3500)), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.NewFromInt(525)), "tax %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.NewFromInt(4025)), "total %s", totals.Total)
}

func TestComputeTotals_EmptySelectionIsZero(t *testing.T) {
	snapshot := models.CartSnapshot{
		Products: []models.ProductLine{
			{UserID: 7, ProductID: 1, UnitPrice: decimal.NewFromInt(250), Quantity: 2},
		},
	}
	totals := ComputeTotals(snapshot, models.Selection{
		Products: map[string]bool{"7-1": false},
		Rentals:  map[string]bool{},
	})

	assert.Zero(t, totals.SelectedItems)
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotals_Deterministic(t *testing.T) {
	snapshot := models.CartSnapshot{
		Products: []models.ProductLine{
			{UserID: 1, ProductID: 10, UnitPrice: decimal.NewFromFloat(19.99), Quantity: 3},
		},
	}
	selection := models.SelectionFor(snapshot)

	first := ComputeTotals(snapshot, selection)
	second := ComputeTotals(snapshot, selection)
	assert.True(t, first.Total.Equal(second.Total))
	assert.Equal(t, first.SelectedItems, second.SelectedItems)
}
