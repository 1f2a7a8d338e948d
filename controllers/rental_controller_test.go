package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-store/backend"
	"hardware-store/middleware"
	"hardware-store/services"
	"hardware-store/session"
)

func TestBookRental_AnonymousGetsIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewMemoryStore(time.Hour)
	rentals := services.NewRentalService(nil, nil, store)
	ctrl := &RentalController{Rentals: rentals}

	router := gin.New()
	router.POST("/rentals/book", middleware.OptionalAuthMiddleware(store), ctrl.BookRental)
	router.GET("/rentals/pending/:intentId", ctrl.PendingRental)

	body := `{"toolId": 5, "quantity": 2, "rentalStart": "2030-09-10", "rentalEnd": "2030-09-12", "returnTo": "/tools/5"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rentals/book", strings.NewReader(body)))

	require.Equal(t, 401, rec.Code)

	var resp struct {
		IntentID string `json:"intentId"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.IntentID)
	assert.Equal(t, "/login", resp.Redirect)

	// The stash replays exactly what was entered, once.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rentals/pending/"+resp.IntentID, nil))
	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"toolId":5`)
	assert.Contains(t, rec.Body.String(), "2030-09-10")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rentals/pending/"+resp.IntentID, nil))
	assert.Equal(t, 404, rec.Code)
}

func TestEstimateRental_Breakdown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 5, "name": "Tile Cutter", "dailyRate": "1000", "category": "cutting", "available": true}`))
	}))
	defer upstream.Close()

	bc := backend.New(upstream.URL, 5*time.Second)
	ctrl := &RentalController{Catalog: services.NewCatalogService(bc)}

	router := gin.New()
	router.GET("/tools/:toolId/estimate", ctrl.EstimateRental)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/tools/5/estimate?rentalStart=2026-09-01&rentalEnd=2026-09-04&quantity=2", nil))

	require.Equal(t, 200, rec.Code)

	var resp struct {
		Data struct {
			Estimate struct {
				Days      int    `json:"days"`
				Subtotal  string `json:"subtotal"`
				Delivery  string `json:"delivery"`
				Insurance string `json:"insurance"`
				Tax       string `json:"tax"`
				Total     string `json:"total"`
			} `json:"estimate"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Estimate.Days)
	assert.Equal(t, "6000", resp.Data.Estimate.Subtotal)
	assert.Equal(t, "1500", resp.Data.Estimate.Delivery)
	assert.Equal(t, "300", resp.Data.Estimate.Insurance)
	assert.Equal(t, "120", resp.Data.Estimate.Tax)
	assert.Equal(t, "7920", resp.Data.Estimate.Total)
}

func TestEstimateRental_BadDates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 5, "name": "Tile Cutter", "dailyRate": "1000"}`))
	}))
	defer upstream.Close()

	bc := backend.New(upstream.URL, 5*time.Second)
	ctrl := &RentalController{Catalog: services.NewCatalogService(bc)}

	router := gin.New()
	router.GET("/tools/:toolId/estimate", ctrl.EstimateRental)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tools/5/estimate", nil))
	assert.Equal(t, 400, rec.Code)
}
