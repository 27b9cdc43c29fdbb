package holding

import (
	"ZWH-Backend/domain"
	"ZWH-Backend/entities"
	"ZWH-Backend/internal/pkg/clock"
	"ZWH-Backend/internal/utils"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	HoldingService interface {
		AddHolding(ctx context.Context, userEmail string, location domain.Location, req domain.AddHoldingRequest) (domain.HoldingResponse, error)
		GetHoldings(ctx context.Context, userEmail string, location domain.Location) ([]domain.HoldingResponse, error)
		UpdateHolding(ctx context.Context, userEmail string, location domain.Location, id string, req domain.UpdateHoldingRequest) (domain.HoldingResponse, error)
		DeleteHolding(ctx context.Context, userEmail string, location domain.Location, id string) error
		GetHoldingStats(ctx context.Context, userEmail string) (domain.HoldingStatsResponse, error)
	}

	// ProductLookup is the part of the product catalog a holding needs.
	ProductLookup interface {
		GetProductByBarcode(ctx context.Context, barcode string) (*entities.Product, error)
	}

	holdingService struct {
		holdingRepository HoldingRepository
		products          ProductLookup
		clock             clock.Clock
	}
)

func NewHoldingService(holdingRepository HoldingRepository, products ProductLookup, clk clock.Clock) HoldingService {
	return &holdingService{
		holdingRepository: holdingRepository,
		products:          products,
		clock:             clk,
	}
}

// record is the location-independent view of a holding row.
type record struct {
	id        uuid.UUID
	userEmail string
	barcode   string
	quantity  int
	date      string
	product   *entities.Product
}

func (r record) response(location domain.Location, now time.Time) domain.HoldingResponse {
	res := domain.HoldingResponse{
		ID:             r.id.String(),
		Location:       location,
		ProductBarcode: r.barcode,
		Quantity:       r.quantity,
		ExpirationDate: r.date,
		Status:         determineStatus(r.date, now),
	}
	if r.product != nil {
		res.ProductName = r.product.Name
	}
	return res
}

func fromFridge(h *entities.FridgeHolding) record {
	return record{h.ID, h.UserEmail, h.ProductBarcode, h.Quantity, h.ExpirationDate, h.Product}
}

func fromPantry(h *entities.PantryHolding) record {
	return record{h.ID, h.UserEmail, h.ProductBarcode, h.Quantity, h.ExpirationDate, h.Product}
}

func (s *holdingService) AddHolding(ctx context.Context, userEmail string, location domain.Location, req domain.AddHoldingRequest) (domain.HoldingResponse, error) {
	if _, err := domain.ParseLocation(string(location)); err != nil {
		return domain.HoldingResponse{}, err
	}
	if req.Quantity <= 0 {
		return domain.HoldingResponse{}, domain.ErrInvalidQuantity
	}
	if !utils.IsHoldingDate(req.ExpirationDate) {
		return domain.HoldingResponse{}, domain.ErrInvalidHoldingDate
	}

	product, err := s.products.GetProductByBarcode(ctx, req.ProductBarcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.HoldingResponse{}, domain.ErrProductNotFoundByBarcode
		}
		return domain.HoldingResponse{}, err
	}

	rec := record{
		id:        uuid.New(),
		userEmail: userEmail,
		barcode:   product.Barcode,
		quantity:  req.Quantity,
		date:      req.ExpirationDate,
		product:   product,
	}

	switch location {
	case domain.LocationFridge:
		err = s.holdingRepository.AddFridgeHolding(ctx, &entities.FridgeHolding{
			ID:             rec.id,
			UserEmail:      rec.userEmail,
			ProductBarcode: rec.barcode,
			Quantity:       rec.quantity,
			ExpirationDate: rec.date,
		})
	default:
		err = s.holdingRepository.AddPantryHolding(ctx, &entities.PantryHolding{
			ID:             rec.id,
			UserEmail:      rec.userEmail,
			ProductBarcode: rec.barcode,
			Quantity:       rec.quantity,
			ExpirationDate: rec.date,
		})
	}
	if err != nil {
		return domain.HoldingResponse{}, err
	}

	return rec.response(location, s.clock.Now()), nil
}

func (s *holdingService) GetHoldings(ctx context.Context, userEmail string, location domain.Location) ([]domain.HoldingResponse, error) {
	var records []record

	switch location {
	case domain.LocationFridge:
		holdings, err := s.holdingRepository.FindFridgeHoldingsByUser(ctx, userEmail)
		if err != nil {
			return nil, err
		}
		for _, h := range holdings {
			records = append(records, fromFridge(h))
		}
	case domain.LocationPantry:
		holdings, err := s.holdingRepository.FindPantryHoldingsByUser(ctx, userEmail)
		if err != nil {
			return nil, err
		}
		for _, h := range holdings {
			records = append(records, fromPantry(h))
		}
	default:
		return nil, domain.ErrInvalidLocation
	}

	response := make([]domain.HoldingResponse, 0, len(records))
	for _, r := range records {
		response = append(response, r.response(location, s.clock.Now()))
	}
	return response, nil
}

func (s *holdingService) UpdateHolding(ctx context.Context, userEmail string, location domain.Location, id string, req domain.UpdateHoldingRequest) (domain.HoldingResponse, error) {
	if req.Quantity < 0 {
		return domain.HoldingResponse{}, domain.ErrInvalidQuantity
	}
	if req.ExpirationDate != "" && !utils.IsHoldingDate(req.ExpirationDate) {
		return domain.HoldingResponse{}, domain.ErrInvalidHoldingDate
	}

	if _, err := uuid.Parse(id); err != nil {
		return domain.HoldingResponse{}, domain.ErrParseUUID
	}

	switch location {
	case domain.LocationFridge:
		h, err := s.holdingRepository.GetFridgeHoldingByID(ctx, id)
		if err != nil {
			return domain.HoldingResponse{}, notFound(err)
		}
		if h.UserEmail != userEmail {
			return domain.HoldingResponse{}, domain.ErrUnauthorizedAccess
		}
		applyUpdate(&h.Quantity, &h.ExpirationDate, req)
		if err := s.holdingRepository.UpdateFridgeHolding(ctx, h); err != nil {
			return domain.HoldingResponse{}, err
		}
		return fromFridge(h).response(location, s.clock.Now()), nil
	case domain.LocationPantry:
		h, err := s.holdingRepository.GetPantryHoldingByID(ctx, id)
		if err != nil {
			return domain.HoldingResponse{}, notFound(err)
		}
		if h.UserEmail != userEmail {
			return domain.HoldingResponse{}, domain.ErrUnauthorizedAccess
		}
		applyUpdate(&h.Quantity, &h.ExpirationDate, req)
		if err := s.holdingRepository.UpdatePantryHolding(ctx, h); err != nil {
			return domain.HoldingResponse{}, err
		}
		return fromPantry(h).response(location, s.clock.Now()), nil
	default:
		return domain.HoldingResponse{}, domain.ErrInvalidLocation
	}
}

func (s *holdingService) DeleteHolding(ctx context.Context, userEmail string, location domain.Location, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}

	switch location {
	case domain.LocationFridge:
		h, err := s.holdingRepository.GetFridgeHoldingByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		if h.UserEmail != userEmail {
			return domain.ErrUnauthorizedAccess
		}
		return s.holdingRepository.DeleteFridgeHolding(ctx, id)
	case domain.LocationPantry:
		h, err := s.holdingRepository.GetPantryHoldingByID(ctx, id)
		if err != nil {
			return notFound(err)
		}
		if h.UserEmail != userEmail {
			return domain.ErrUnauthorizedAccess
		}
		return s.holdingRepository.DeletePantryHolding(ctx, id)
	default:
		return domain.ErrInvalidLocation
	}
}

// GetHoldingStats counts the user's holdings in both locations by expiry status.
func (s *holdingService) GetHoldingStats(ctx context.Context, userEmail string) (domain.HoldingStatsResponse, error) {
	fridge, err := s.holdingRepository.FindFridgeHoldingsByUser(ctx, userEmail)
	if err != nil {
		return domain.HoldingStatsResponse{}, err
	}
	pantry, err := s.holdingRepository.FindPantryHoldingsByUser(ctx, userEmail)
	if err != nil {
		return domain.HoldingStatsResponse{}, err
	}

	records := make([]record, 0, len(fridge)+len(pantry))
	for _, h := range fridge {
		records = append(records, fromFridge(h))
	}
	for _, h := range pantry {
		records = append(records, fromPantry(h))
	}

	now := s.clock.Now()
	stats := domain.HoldingStatsResponse{
		TotalItems:  len(records),
		FridgeItems: len(fridge),
		PantryItems: len(pantry),
	}
	for _, r := range records {
		stats.TotalQuantity += r.quantity
		switch determineStatus(r.date, now) {
		case StatusSafe:
			stats.SafeItems++
		case StatusWarning:
			stats.WarningItems++
		case StatusExpired:
			stats.ExpiredItems++
		}
	}

	return stats, nil
}

func applyUpdate(quantity *int, date *string, req domain.UpdateHoldingRequest) {
	if req.Quantity > 0 {
		*quantity = req.Quantity
	}
	if req.ExpirationDate != "" {
		*date = req.ExpirationDate
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrHoldingNotFound
	}
	return err
}
