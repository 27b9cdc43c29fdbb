package product

import (
	"ZWH-Backend/domain"
	"ZWH-Backend/entities"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		FindProductsByNameContaining(ctx context.Context, fragment string) ([]*entities.Product, error)
		GetProductByBarcode(ctx context.Context, barcode string) (*entities.Product, error)
		ListProducts(ctx context.Context, page, limit int) ([]*entities.Product, int64, error)
		CreateProduct(ctx context.Context, product *entities.Product) error
		UpdateProduct(ctx context.Context, product *entities.Product, categories []string) error
		// DeleteProduct removes the product and everything that references it
		// in a single transaction: fridge holdings, pantry holdings, category
		// rows, then the product itself.
		DeleteProduct(ctx context.Context, barcode string) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindProductsByNameContaining(ctx context.Context, fragment string) ([]*entities.Product, error) {
	var products []*entities.Product

	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, "%"+escapeLike(fragment)+"%").
		Order("barcode asc").
		Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes fragment match literally inside a LIKE pattern.
func escapeLike(fragment string) string {
	return likeEscaper.Replace(fragment)
}

func (r *productRepository) GetProductByBarcode(ctx context.Context, barcode string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("barcode = ?", barcode).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListProducts(ctx context.Context, page, limit int) ([]*entities.Product, int64, error) {
	var products []*entities.Product
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Product{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Offset(offset).
		Limit(limit).
		Order("name asc").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, count, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entities.Product
		err := tx.Where("barcode = ?", product.Barcode).First(&existing).Error
		if err == nil {
			return domain.ErrProductAlreadyExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(product).Error
	})
}

// UpdateProduct saves the product columns. When categories is non-nil the
// stored tags are replaced with it.
func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product, categories []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories", "FridgeHoldings").Save(product).Error; err != nil {
			return err
		}
		if categories == nil {
			return nil
		}
		if err := tx.Where("product_barcode = ?", product.Barcode).Delete(&entities.ProductCategory{}).Error; err != nil {
			return err
		}
		rows := newCategories(product.Barcode, categories)
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		product.Categories = rows
		return nil
	})
}

func (r *productRepository) DeleteProduct(ctx context.Context, barcode string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_barcode = ?", barcode).Delete(&entities.FridgeHolding{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_barcode = ?", barcode).Delete(&entities.PantryHolding{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_barcode = ?", barcode).Delete(&entities.ProductCategory{}).Error; err != nil {
			return err
		}

		res := tx.Where("barcode = ?", barcode).Delete(&entities.Product{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
