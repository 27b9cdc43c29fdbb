package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"ZWH-Backend/domain"
	"ZWH-Backend/internal/utils"
	"ZWH-Backend/pkg/holding"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHoldingService struct {
	holding.HoldingService

	err         error
	gotLocation domain.Location
	gotID       string
}

func (s *stubHoldingService) AddHolding(_ context.Context, _ string, location domain.Location, req domain.AddHoldingRequest) (domain.HoldingResponse, error) {
	s.gotLocation = location
	if s.err != nil {
		return domain.HoldingResponse{}, s.err
	}
	return domain.HoldingResponse{
		ID:             "h-1",
		Location:       location,
		ProductBarcode: req.ProductBarcode,
		Quantity:       req.Quantity,
		ExpirationDate: req.ExpirationDate,
	}, nil
}

func (s *stubHoldingService) GetHoldings(_ context.Context, _ string, location domain.Location) ([]domain.HoldingResponse, error) {
	s.gotLocation = location
	return []domain.HoldingResponse{}, s.err
}

func (s *stubHoldingService) DeleteHolding(_ context.Context, _ string, location domain.Location, id string) error {
	s.gotLocation, s.gotID = location, id
	return s.err
}

func (s *stubHoldingService) GetHoldingStats(_ context.Context, _ string) (domain.HoldingStatsResponse, error) {
	return domain.HoldingStatsResponse{TotalItems: 2, FridgeItems: 1, PantryItems: 1}, s.err
}

func newHoldingTestApp(svc holding.HoldingService) *fiber.App {
	utils.InitValidator()
	h := NewHoldingHandler(svc, utils.Validate)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_email", "test1@example.com")
		return c.Next()
	})
	app.Get("/holdings/stats", h.GetHoldingStats)
	app.Post("/holdings/:location", h.AddHolding)
	app.Get("/holdings/:location", h.GetHoldings)
	app.Delete("/holdings/:location/:id", h.DeleteHolding)
	return app
}

func TestAddHoldingHandler(t *testing.T) {
	svc := &stubHoldingService{}
	app := newHoldingTestApp(svc)

	status, env := do(t, app, fiber.MethodPost, "/holdings/fridge",
		`{"product_barcode":"1234","quantity":2,"expiration_date":"2024-12-31"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, domain.LocationFridge, svc.gotLocation)

	var res domain.HoldingResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, 2, res.Quantity)
	assert.Equal(t, domain.LocationFridge, res.Location)
}

func TestAddHoldingHandler_BadInput(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
	}{
		{"unknown location", "/holdings/freezer", `{"product_barcode":"1234","quantity":1,"expiration_date":"2024-12-31"}`},
		{"product date format", "/holdings/pantry", `{"product_barcode":"1234","quantity":1,"expiration_date":"31/12/24"}`},
		{"missing quantity", "/holdings/pantry", `{"product_barcode":"1234","expiration_date":"2024-12-31"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubHoldingService{}
			status, env := do(t, newHoldingTestApp(svc), fiber.MethodPost, tt.target, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.False(t, env.Status)
			assert.Empty(t, svc.gotLocation)
		})
	}
}

func TestGetHoldingsHandler(t *testing.T) {
	svc := &stubHoldingService{}
	status, env := do(t, newHoldingTestApp(svc), fiber.MethodGet, "/holdings/pantry", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, domain.LocationPantry, svc.gotLocation)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestDeleteHoldingHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, fiber.StatusOK},
		{"not owner", domain.ErrUnauthorizedAccess, fiber.StatusForbidden},
		{"missing", domain.ErrHoldingNotFound, fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubHoldingService{err: tt.err}
			status, _ := do(t, newHoldingTestApp(svc), fiber.MethodDelete, "/holdings/fridge/abc", "")
			assert.Equal(t, tt.want, status)
			assert.Equal(t, "abc", svc.gotID)
		})
	}
}

func TestGetHoldingStatsHandler(t *testing.T) {
	status, env := do(t, newHoldingTestApp(&stubHoldingService{}), fiber.MethodGet, "/holdings/stats", "")
	require.Equal(t, fiber.StatusOK, status)

	var stats domain.HoldingStatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 2, stats.TotalItems)
}
