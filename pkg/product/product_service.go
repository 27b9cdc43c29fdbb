package product

import (
	"ZWH-Backend/domain"
	"ZWH-Backend/entities"
	"ZWH-Backend/internal/utils/storage"
	"ZWH-Backend/pkg/holding"
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		SearchByName(ctx context.Context, userEmail string, nameFragment string) ([]domain.SearchResult, error)

		CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error)
		GetProduct(ctx context.Context, barcode string) (domain.ProductResponse, error)
		ListProducts(ctx context.Context, page, limit int) ([]domain.ProductResponse, int64, error)
		UpdateProduct(ctx context.Context, barcode string, req domain.UpdateProductRequest) (domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, barcode string) error
		UploadProductImage(ctx context.Context, barcode string, req domain.UploadProductImageRequest) (domain.ProductResponse, error)
	}

	productService struct {
		productRepository ProductRepository
		holdingRepository holding.HoldingRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, holdingRepository holding.HoldingRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		holdingRepository: holdingRepository,
		s3:                s3,
	}
}

// SearchByName returns one result per fridge or pantry holding of userEmail
// whose product name contains nameFragment, fridge results first. It fails
// with *domain.NotFoundError when no product matches at all; a user without
// matching holdings gets an empty slice.
func (s *productService) SearchByName(ctx context.Context, userEmail string, nameFragment string) ([]domain.SearchResult, error) {
	products, err := s.productRepository.FindProductsByNameContaining(ctx, nameFragment)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, &domain.NotFoundError{Fragment: nameFragment}
	}

	candidates := make(map[string]*entities.Product, len(products))
	for _, p := range products {
		candidates[p.Barcode] = p
	}

	fridgeHoldings, err := s.holdingRepository.FindFridgeHoldingsByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}
	pantryHoldings, err := s.holdingRepository.FindPantryHoldingsByUser(ctx, userEmail)
	if err != nil {
		return nil, err
	}

	results := make([]domain.SearchResult, 0, len(fridgeHoldings)+len(pantryHoldings))
	for _, h := range fridgeHoldings {
		if p, ok := candidates[holdingBarcode(h.ProductBarcode, h.Product)]; ok {
			results = append(results, newSearchResult(p, h.Quantity, h.ExpirationDate, domain.LocationFridge))
		}
	}
	for _, h := range pantryHoldings {
		if p, ok := candidates[holdingBarcode(h.ProductBarcode, h.Product)]; ok {
			results = append(results, newSearchResult(p, h.Quantity, h.ExpirationDate, domain.LocationPantry))
		}
	}

	return results, nil
}

func holdingBarcode(barcode string, product *entities.Product) string {
	if barcode == "" && product != nil {
		return product.Barcode
	}
	return barcode
}

func (s *productService) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	product := &entities.Product{
		Barcode:        req.Barcode,
		Name:           req.Name,
		ExpirationDate: req.ExpirationDate,
		Categories:     newCategories(req.Barcode, req.Categories),
	}

	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return newProductResponse(product), nil
}

func (s *productService) GetProduct(ctx context.Context, barcode string) (domain.ProductResponse, error) {
	product, err := s.getProduct(ctx, barcode)
	if err != nil {
		return domain.ProductResponse{}, err
	}
	return newProductResponse(product), nil
}

func (s *productService) getProduct(ctx context.Context, barcode string) (*entities.Product, error) {
	product, err := s.productRepository.GetProductByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFoundByBarcode
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.productRepository.ListProducts(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, newProductResponse(p))
	}
	return response, count, nil
}

func (s *productService) UpdateProduct(ctx context.Context, barcode string, req domain.UpdateProductRequest) (domain.ProductResponse, error) {
	product, err := s.getProduct(ctx, barcode)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.ExpirationDate != "" {
		product.ExpirationDate = req.ExpirationDate
	}

	if err := s.productRepository.UpdateProduct(ctx, product, req.Categories); err != nil {
		return domain.ProductResponse{}, err
	}
	return newProductResponse(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, barcode string) error {
	product, err := s.getProduct(ctx, barcode)
	if err != nil {
		return err
	}

	if product.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(product.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				log.Warnf("product %s: failed to delete image %s: %v", barcode, objectKey, err)
			}
		}
	}

	if err := s.productRepository.DeleteProduct(ctx, barcode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFoundByBarcode
		}
		return err
	}
	return nil
}

func (s *productService) UploadProductImage(ctx context.Context, barcode string, req domain.UploadProductImageRequest) (domain.ProductResponse, error) {
	product, err := s.getProduct(ctx, barcode)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	var objectKey string
	var uploadErr error

	existingKey := ""
	if product.ImageURL != "" {
		existingKey = s.s3.GetObjectKeyFromLink(product.ImageURL)
	}
	if existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fmt.Sprintf("product-%s", barcode), req.Image, "products", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.ProductResponse{}, uploadErr
	}

	product.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.productRepository.UpdateProduct(ctx, product, nil); err != nil {
		return domain.ProductResponse{}, err
	}
	return newProductResponse(product), nil
}
