package services

import (
	"context"
	"fmt"

	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/internal/store"
)

// listLimit caps how many products a single listing returns.
const listLimit = 100

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService. repo may be nil when no
// document store is configured; every call site checks for that.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts retrieves up to 100 products in store order.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.repo == nil {
		return nil, fmt.Errorf("cannot list products: %w", store.ErrUnavailable)
	}

	products, err := s.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// CreateProduct persists a new product and returns its assigned identifier.
func (s *ProductService) CreateProduct(ctx context.Context, data models.ProductData) (string, error) {
	if s.repo == nil {
		return "", fmt.Errorf("cannot create product: %w", store.ErrUnavailable)
	}
	return s.repo.Create(ctx, data)
}
