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

func TestRentalDays(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 3, RentalDays(day("2026-09-01"), day("2026-09-04")))
	assert.Equal(t, 1, RentalDays(day("2026-09-01"), day("2026-09-02")))
	// Same day and inverted ranges still charge one day.
	assert.Equal(t, 1, RentalDays(day("2026-09-01"), day("2026-09-01")))
	assert.Equal(t, 1, RentalDays(day("2026-09-04"), day("2026-09-01")))
}

func TestEstimate_FullBreakdown(t *testing.T) {
	// 1000/day, 3 days, quantity 2: subtotal 6000, delivery 1500,
	// insurance 300, tax 120.
	est, err := Estimate(decimal.NewFromInt(1000), "2026-09-01", "2026-09-04", 2)
	require.NoError(t, err)

	assert.Equal(t, 3, est.Days)
	assert.True(t, est.Subtotal.Equal(decimal.NewFromInt(6000)), "subtotal %s", est.Subtotal)
	assert.True(t, est.Delivery.Equal(decimal.NewFromInt(1500)), "delivery %s", est.Delivery)
	assert.True(t, est.Insurance.Equal(decimal.NewFromInt(300)), "insurance %s", est.Insurance)
	assert.True(t, est.Tax.Equal(decimal.NewFromInt(120)), "tax %s", est.Tax)
	assert.True(t, est.Total.Equal(decimal.NewFromInt(7920)), "total %s", est.Total)
}

func TestEstimate_ZeroSubtotalSkipsDelivery(t *testing.T) {
	est, err := Estimate(decimal.Zero, "2026-09-01", "2026-09-04", 1)
	require.NoError(t, err)
	assert.True(t, est.Delivery.IsZero())
	assert.True(t, est.Total.IsZero())
}

func TestEstimate_BadDates(t *testing.T) {
	_, err := Estimate(decimal.NewFromInt(1000), "not-a-date", "2026-09-04", 1)
	assert.ErrorIs(t, err, ErrDatesRequired)
}

func TestValidateBooking(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	cases := []struct {
		name string
		req  models.BookRentalRequest
		want error
	}{
		{"valid", models.BookRentalRequest{ToolID: 1, Quantity: 2, RentalStart: tomorrow, RentalEnd: nextWeek}, nil},
		{"missing dates", models.BookRentalRequest{ToolID: 1, Quantity: 1}, ErrDatesRequired},
		{"start in past", models.BookRentalRequest{ToolID: 1, Quantity: 1, RentalStart: yesterday, RentalEnd: nextWeek}, ErrStartInPast},
		{"end before start", models.BookRentalRequest{ToolID: 1, Quantity: 1, RentalStart: nextWeek, RentalEnd: tomorrow}, ErrEndNotAfterStart},
		{"end equals start", models.BookRentalRequest{ToolID: 1, Quantity: 1, RentalStart: tomorrow, RentalEnd: tomorrow}, ErrEndNotAfterStart},
		{"zero quantity", models.BookRentalRequest{ToolID: 1, Quantity: 0, RentalStart: tomorrow, RentalEnd: nextWeek}, ErrRentalQuantityCap},
		{"over cap", models.BookRentalRequest{ToolID: 1, Quantity: 6, RentalStart: tomorrow, RentalEnd: nextWeek}, ErrRentalQuantityCap},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBooking(tc.req)
			if tc.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestRentalService_Book_ValidationNeverHitsBackend(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	bc := backend.New(srv.URL, 5*time.Second)
	store := session.NewMemoryStore(time.Hour)
	svc := NewRentalService(bc, NewCartService(bc, store), store)

	_, _, err := svc.Book(context.Background(), 7, models.BookRentalRequest{ToolID: 1, Quantity: 1})
	assert.ErrorIs(t, err, ErrDatesRequired)
	assert.Zero(t, hits.Load())
}

func TestRentalService_IntentRoundTrip(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	svc := NewRentalService(nil, nil, store)

	req := models.BookRentalRequest{
		ToolID:      5,
		Quantity:    2,
		RentalStart: "2026-09-10",
		RentalEnd:   "2026-09-12",
		ReturnTo:    "/tools/5",
	}

	intentID, err := svc.StashIntent(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, intentID)

	// The stash comes back exactly as entered.
	intent, err := svc.TakeIntent(context.Background(), intentID)
	require.NoError(t, err)
	require.NotNil(t, intent)
	assert.Equal(t, 5, intent.ToolID)
	assert.Equal(t, 2, intent.Quantity)
	assert.Equal(t, "2026-09-10", intent.RentalStart)
	assert.Equal(t, "2026-09-12", intent.RentalEnd)
	assert.Equal(t, "/tools/5", intent.ReturnTo)

	// One-shot: a second take finds nothing.
	intent, err = svc.TakeIntent(context.Background(), intentID)
	require.NoError(t, err)
	assert.Nil(t, intent)
}

func TestRentalService_TakeIntent_UnknownID(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	svc := NewRentalService(nil, nil, store)

	intent, err := svc.TakeIntent(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, intent)
}
