package domain

import (
	"errors"
)

type Location string

const (
	LocationFridge Location = "fridge"
	LocationPantry Location = "pantry"
)

var (
	MessageSuccessAddHolding    = "holding added successfully"
	MessageSuccessGetHoldings   = "holdings retrieved successfully"
	MessageSuccessUpdateHolding = "holding updated successfully"
	MessageSuccessDeleteHolding = "holding deleted successfully"
	MessageSuccessGetStats      = "holding statistics retrieved successfully"

	MessageFailedAddHolding    = "failed to add holding"
	MessageFailedGetHoldings   = "failed to retrieve holdings"
	MessageFailedUpdateHolding = "failed to update holding"
	MessageFailedDeleteHolding = "failed to delete holding"
	MessageFailedGetStats      = "failed to retrieve holding statistics"

	ErrHoldingNotFound    = errors.New("holding not found")
	ErrInvalidLocation    = errors.New("location must be fridge or pantry")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidHoldingDate = errors.New("expiration date must be in yyyy-mm-dd format")
)

func ParseLocation(s string) (Location, error) {
	switch Location(s) {
	case LocationFridge, LocationPantry:
		return Location(s), nil
	default:
		return "", ErrInvalidLocation
	}
}

type (
	AddHoldingRequest struct {
		ProductBarcode string `json:"product_barcode" validate:"required"`
		Quantity       int    `json:"quantity" validate:"required,min=1"`
		ExpirationDate string `json:"expiration_date" validate:"required,holding_date"`
	}

	UpdateHoldingRequest struct {
		Quantity       int    `json:"quantity" validate:"omitempty,min=1"`
		ExpirationDate string `json:"expiration_date" validate:"omitempty,holding_date"`
	}

	HoldingResponse struct {
		ID             string   `json:"id"`
		Location       Location `json:"location"`
		ProductBarcode string   `json:"product_barcode"`
		ProductName    string   `json:"product_name,omitempty"`
		Quantity       int      `json:"quantity"`
		ExpirationDate string   `json:"expiration_date"`
		Status         string   `json:"status"`
	}

	HoldingStatsResponse struct {
		TotalItems    int `json:"total_items"`
		TotalQuantity int `json:"total_quantity"`
		FridgeItems   int `json:"fridge_items"`
		PantryItems   int `json:"pantry_items"`
		SafeItems     int `json:"safe_items"`
		WarningItems  int `json:"warning_items"`
		ExpiredItems  int `json:"expired_items"`
	}
)
