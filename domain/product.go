package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessSearchProducts = "products found successfully"
	MessageSuccessCreateProduct  = "product created successfully"
	MessageSuccessGetProduct     = "product retrieved successfully"
	MessageSuccessGetProducts    = "products retrieved successfully"
	MessageSuccessUpdateProduct  = "product updated successfully"
	MessageSuccessDeleteProduct  = "product deleted successfully"
	MessageSuccessUploadImage    = "product image uploaded successfully"

	MessageFailedSearchProducts = "failed to search products"
	MessageFailedCreateProduct  = "failed to create product"
	MessageFailedGetProduct     = "failed to retrieve product"
	MessageFailedGetProducts    = "failed to retrieve products"
	MessageFailedUpdateProduct  = "failed to update product"
	MessageFailedDeleteProduct  = "failed to delete product"
	MessageFailedUploadImage    = "failed to upload product image"

	ErrProductNotFound          = errors.New("no matching product")
	ErrProductNotFoundByBarcode = errors.New("product not found")
	ErrProductAlreadyExists     = errors.New("product with this barcode already exists")
)

// NotFoundError is returned by the name search when no product matches the
// fragment. It matches ErrProductNotFound under errors.Is.
type NotFoundError struct {
	Fragment string
}

func (e *NotFoundError) Error() string {
	return ErrProductNotFound.Error()
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrProductNotFound
}

type (
	// SearchResult is one matched holding. ExpirationDate is the holding's
	// yyyy-mm-dd date, ProductExpirationDate the catalog's dd/mm/yy one.
	SearchResult struct {
		Name                  string   `json:"name"`
		Barcode               string   `json:"barcode"`
		ExpirationDate        string   `json:"expiration_date"`
		ProductExpirationDate string   `json:"product_expiration_date"`
		Quantity              int      `json:"quantity"`
		Location              Location `json:"location"`
	}

	SearchProductRequest struct {
		Name string `query:"name" validate:"max=50"`
	}

	CreateProductRequest struct {
		Barcode        string   `json:"barcode" validate:"required,barcode"`
		Name           string   `json:"name" validate:"required,product_name"`
		ExpirationDate string   `json:"expiration_date" validate:"required,product_date"`
		Categories     []string `json:"categories" validate:"omitempty,dive,required,max=50"`
	}

	UpdateProductRequest struct {
		Name           string   `json:"name" validate:"omitempty,product_name"`
		ExpirationDate string   `json:"expiration_date" validate:"omitempty,product_date"`
		Categories     []string `json:"categories" validate:"omitempty,dive,required,max=50"`
	}

	UploadProductImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ProductResponse struct {
		Barcode        string   `json:"barcode"`
		Name           string   `json:"name"`
		ExpirationDate string   `json:"expiration_date"`
		Categories     []string `json:"categories"`
		ImageURL       string   `json:"image_url,omitempty"`
	}
)
