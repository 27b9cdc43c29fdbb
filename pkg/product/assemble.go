package product

import (
	"ZWH-Backend/domain"
	"ZWH-Backend/entities"
	"github.com/google/uuid"
)

// newSearchResult builds the transport record for one holding of product.
// The holding's own date wins; the catalog date is used only when the
// holding has none.
func newSearchResult(product *entities.Product, quantity int, holdingDate string, location domain.Location) domain.SearchResult {
	expiration := holdingDate
	if expiration == "" {
		expiration = product.ExpirationDate
	}

	return domain.SearchResult{
		Name:                  product.Name,
		Barcode:               product.Barcode,
		ExpirationDate:        expiration,
		ProductExpirationDate: product.ExpirationDate,
		Quantity:              quantity,
		Location:              location,
	}
}

func newProductResponse(product *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		Barcode:        product.Barcode,
		Name:           product.Name,
		ExpirationDate: product.ExpirationDate,
		Categories:     product.CategoryNames(),
		ImageURL:       product.ImageURL,
	}
}

func newCategories(barcode string, names []string) []*entities.ProductCategory {
	rows := make([]*entities.ProductCategory, 0, len(names))
	for _, name := range names {
		rows = append(rows, &entities.ProductCategory{
			ID:             uuid.New(),
			ProductBarcode: barcode,
			Name:           name,
		})
	}
	return rows
}
