package holding

import (
	"context"
	"errors"
	"testing"
	"time"

	"ZWH-Backend/domain"
	"ZWH-Backend/entities"
	"ZWH-Backend/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryHoldingRepository struct {
	fridge []*entities.FridgeHolding
	pantry []*entities.PantryHolding
}

func (m *memoryHoldingRepository) FindFridgeHoldingsByUser(_ context.Context, email string) ([]*entities.FridgeHolding, error) {
	var out []*entities.FridgeHolding
	for _, h := range m.fridge {
		if h.UserEmail == email {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memoryHoldingRepository) FindPantryHoldingsByUser(_ context.Context, email string) ([]*entities.PantryHolding, error) {
	var out []*entities.PantryHolding
	for _, h := range m.pantry {
		if h.UserEmail == email {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *memoryHoldingRepository) AddFridgeHolding(_ context.Context, h *entities.FridgeHolding) error {
	m.fridge = append(m.fridge, h)
	return nil
}

func (m *memoryHoldingRepository) AddPantryHolding(_ context.Context, h *entities.PantryHolding) error {
	m.pantry = append(m.pantry, h)
	return nil
}

func (m *memoryHoldingRepository) GetFridgeHoldingByID(_ context.Context, id string) (*entities.FridgeHolding, error) {
	for _, h := range m.fridge {
		if h.ID.String() == id {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryHoldingRepository) GetPantryHoldingByID(_ context.Context, id string) (*entities.PantryHolding, error) {
	for _, h := range m.pantry {
		if h.ID.String() == id {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryHoldingRepository) UpdateFridgeHolding(context.Context, *entities.FridgeHolding) error {
	return nil
}

func (m *memoryHoldingRepository) UpdatePantryHolding(context.Context, *entities.PantryHolding) error {
	return nil
}

func (m *memoryHoldingRepository) DeleteFridgeHolding(_ context.Context, id string) error {
	for i, h := range m.fridge {
		if h.ID.String() == id {
			m.fridge = append(m.fridge[:i], m.fridge[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memoryHoldingRepository) DeletePantryHolding(_ context.Context, id string) error {
	for i, h := range m.pantry {
		if h.ID.String() == id {
			m.pantry = append(m.pantry[:i], m.pantry[i+1:]...)
			return nil
		}
	}
	return nil
}

type catalog map[string]*entities.Product

func (c catalog) GetProductByBarcode(_ context.Context, barcode string) (*entities.Product, error) {
	if p, ok := c[barcode]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

const owner = "owner@example.com"

func newTestService() (HoldingService, *memoryHoldingRepository) {
	repo := &memoryHoldingRepository{}
	products := catalog{"1234": {Barcode: "1234", Name: "Pasta", ExpirationDate: "31/12/24"}}
	clk := clock.NewMockClock(time.Date(2024, 12, 10, 9, 0, 0, 0, time.UTC))
	return NewHoldingService(repo, products, clk), repo
}

func TestAddHolding(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	res, err := svc.AddHolding(ctx, owner, domain.LocationPantry, domain.AddHoldingRequest{
		ProductBarcode: "1234",
		Quantity:       2,
		ExpirationDate: "2024-12-31",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LocationPantry, res.Location)
	assert.Equal(t, "Pasta", res.ProductName)
	assert.Equal(t, 2, res.Quantity)
	assert.Equal(t, StatusSafe, res.Status)
	require.Len(t, repo.pantry, 1)
	assert.Empty(t, repo.fridge)
	assert.Equal(t, owner, repo.pantry[0].UserEmail)

	_, err = svc.AddHolding(ctx, owner, domain.LocationFridge, domain.AddHoldingRequest{
		ProductBarcode: "1234",
		Quantity:       1,
		ExpirationDate: "2024-11-30",
	})
	require.NoError(t, err)
	assert.Len(t, repo.fridge, 1)
}

func TestAddHolding_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		location domain.Location
		req      domain.AddHoldingRequest
		wantErr  error
	}{
		{
			name:     "unknown location",
			location: "freezer",
			req:      domain.AddHoldingRequest{ProductBarcode: "1234", Quantity: 1, ExpirationDate: "2024-12-31"},
			wantErr:  domain.ErrInvalidLocation,
		},
		{
			name:     "zero quantity",
			location: domain.LocationFridge,
			req:      domain.AddHoldingRequest{ProductBarcode: "1234", Quantity: 0, ExpirationDate: "2024-12-31"},
			wantErr:  domain.ErrInvalidQuantity,
		},
		{
			name:     "product date format",
			location: domain.LocationFridge,
			req:      domain.AddHoldingRequest{ProductBarcode: "1234", Quantity: 1, ExpirationDate: "31/12/24"},
			wantErr:  domain.ErrInvalidHoldingDate,
		},
		{
			name:     "unknown product",
			location: domain.LocationPantry,
			req:      domain.AddHoldingRequest{ProductBarcode: "9999", Quantity: 1, ExpirationDate: "2024-12-31"},
			wantErr:  domain.ErrProductNotFoundByBarcode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			_, err := svc.AddHolding(context.Background(), owner, tt.location, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.fridge)
			assert.Empty(t, repo.pantry)
		})
	}
}

func TestGetHoldings(t *testing.T) {
	svc, repo := newTestService()
	repo.fridge = []*entities.FridgeHolding{
		{ID: uuid.New(), UserEmail: owner, ProductBarcode: "1234", Quantity: 1, ExpirationDate: "2024-11-30"},
		{ID: uuid.New(), UserEmail: "other@example.com", ProductBarcode: "1234", Quantity: 7, ExpirationDate: "2024-11-30"},
	}

	items, err := svc.GetHoldings(context.Background(), owner, domain.LocationFridge)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, StatusExpired, items[0].Status)

	items, err = svc.GetHoldings(context.Background(), owner, domain.LocationPantry)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	_, err = svc.GetHoldings(context.Background(), owner, "cellar")
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestUpdateHolding(t *testing.T) {
	svc, repo := newTestService()
	id := uuid.New()
	repo.pantry = []*entities.PantryHolding{
		{ID: id, UserEmail: owner, ProductBarcode: "1234", Quantity: 2, ExpirationDate: "2024-12-31"},
	}

	res, err := svc.UpdateHolding(context.Background(), owner, domain.LocationPantry, id.String(), domain.UpdateHoldingRequest{Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Quantity)
	assert.Equal(t, "2024-12-31", res.ExpirationDate)

	_, err = svc.UpdateHolding(context.Background(), "intruder@example.com", domain.LocationPantry, id.String(), domain.UpdateHoldingRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
	assert.Equal(t, 5, repo.pantry[0].Quantity)

	_, err = svc.UpdateHolding(context.Background(), owner, domain.LocationFridge, id.String(), domain.UpdateHoldingRequest{Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrHoldingNotFound)

	_, err = svc.UpdateHolding(context.Background(), owner, domain.LocationPantry, id.String(), domain.UpdateHoldingRequest{ExpirationDate: "2024/12/31"})
	assert.ErrorIs(t, err, domain.ErrInvalidHoldingDate)
}

func TestDeleteHolding(t *testing.T) {
	svc, repo := newTestService()
	id := uuid.New()
	repo.fridge = []*entities.FridgeHolding{
		{ID: id, UserEmail: owner, ProductBarcode: "1234", Quantity: 1, ExpirationDate: "2024-11-30"},
	}

	err := svc.DeleteHolding(context.Background(), "intruder@example.com", domain.LocationFridge, id.String())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedAccess)
	assert.Len(t, repo.fridge, 1)

	require.NoError(t, svc.DeleteHolding(context.Background(), owner, domain.LocationFridge, id.String()))
	assert.Empty(t, repo.fridge)

	err = svc.DeleteHolding(context.Background(), owner, domain.LocationFridge, id.String())
	assert.True(t, errors.Is(err, domain.ErrHoldingNotFound))

	err = svc.DeleteHolding(context.Background(), owner, domain.LocationFridge, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestGetHoldingStats(t *testing.T) {
	svc, repo := newTestService()
	repo.fridge = []*entities.FridgeHolding{
		{ID: uuid.New(), UserEmail: owner, ProductBarcode: "1234", Quantity: 1, ExpirationDate: "2024-12-01"},
		{ID: uuid.New(), UserEmail: owner, ProductBarcode: "1234", Quantity: 3, ExpirationDate: "2024-12-11"},
		{ID: uuid.New(), UserEmail: "other@example.com", ProductBarcode: "1234", Quantity: 9, ExpirationDate: "2024-12-11"},
	}
	repo.pantry = []*entities.PantryHolding{
		{ID: uuid.New(), UserEmail: owner, ProductBarcode: "1234", Quantity: 2, ExpirationDate: "2025-03-01"},
	}

	stats, err := svc.GetHoldingStats(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, domain.HoldingStatsResponse{
		TotalItems:    3,
		TotalQuantity: 6,
		FridgeItems:   2,
		PantryItems:   1,
		SafeItems:     1,
		WarningItems:  1,
		ExpiredItems:  1,
	}, stats)
}
