package holding

import (
	"ZWH-Backend/entities"
	"context"
	"gorm.io/gorm"
)

type (
	// HoldingRepository reads and writes the two parallel holding tables.
	// Finders preload the referenced product and return rows in insertion
	// order, ties broken by id.
	HoldingRepository interface {
		FindFridgeHoldingsByUser(ctx context.Context, userEmail string) ([]*entities.FridgeHolding, error)
		FindPantryHoldingsByUser(ctx context.Context, userEmail string) ([]*entities.PantryHolding, error)

		AddFridgeHolding(ctx context.Context, holding *entities.FridgeHolding) error
		AddPantryHolding(ctx context.Context, holding *entities.PantryHolding) error
		GetFridgeHoldingByID(ctx context.Context, id string) (*entities.FridgeHolding, error)
		GetPantryHoldingByID(ctx context.Context, id string) (*entities.PantryHolding, error)
		UpdateFridgeHolding(ctx context.Context, holding *entities.FridgeHolding) error
		UpdatePantryHolding(ctx context.Context, holding *entities.PantryHolding) error
		DeleteFridgeHolding(ctx context.Context, id string) error
		DeletePantryHolding(ctx context.Context, id string) error
	}

	holdingRepository struct {
		db *gorm.DB
	}
)

func NewHoldingRepository(db *gorm.DB) HoldingRepository {
	return &holdingRepository{db: db}
}

func (r *holdingRepository) FindFridgeHoldingsByUser(ctx context.Context, userEmail string) ([]*entities.FridgeHolding, error) {
	var holdings []*entities.FridgeHolding
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_email = ?", userEmail).
		Order("created_at asc, id asc").
		Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

func (r *holdingRepository) FindPantryHoldingsByUser(ctx context.Context, userEmail string) ([]*entities.PantryHolding, error) {
	var holdings []*entities.PantryHolding
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_email = ?", userEmail).
		Order("created_at asc, id asc").
		Find(&holdings).Error; err != nil {
		return nil, err
	}
	return holdings, nil
}

func (r *holdingRepository) AddFridgeHolding(ctx context.Context, holding *entities.FridgeHolding) error {
	return r.db.WithContext(ctx).Omit("User", "Product").Create(holding).Error
}

func (r *holdingRepository) AddPantryHolding(ctx context.Context, holding *entities.PantryHolding) error {
	return r.db.WithContext(ctx).Omit("User", "Product").Create(holding).Error
}

func (r *holdingRepository) GetFridgeHoldingByID(ctx context.Context, id string) (*entities.FridgeHolding, error) {
	var holding entities.FridgeHolding
	if err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&holding).Error; err != nil {
		return nil, err
	}
	return &holding, nil
}

func (r *holdingRepository) GetPantryHoldingByID(ctx context.Context, id string) (*entities.PantryHolding, error) {
	var holding entities.PantryHolding
	if err := r.db.WithContext(ctx).Preload("Product").Where("id = ?", id).First(&holding).Error; err != nil {
		return nil, err
	}
	return &holding, nil
}

func (r *holdingRepository) UpdateFridgeHolding(ctx context.Context, holding *entities.FridgeHolding) error {
	return r.db.WithContext(ctx).Omit("User", "Product").Save(holding).Error
}

func (r *holdingRepository) UpdatePantryHolding(ctx context.Context, holding *entities.PantryHolding) error {
	return r.db.WithContext(ctx).Omit("User", "Product").Save(holding).Error
}

func (r *holdingRepository) DeleteFridgeHolding(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FridgeHolding{}).Error
}

func (r *holdingRepository) DeletePantryHolding(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryHolding{}).Error
}
